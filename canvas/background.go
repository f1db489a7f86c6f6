package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawGuides renders faint crosses at every grid intersection in view,
// offset by the camera so the backdrop moves with the tiles.
func DrawGuides(cam *Camera, layout Layout, screen *ebiten.Image, clr color.Color) {
	b := screen.Bounds()
	vw, vh := float64(b.Dx()), float64(b.Dy())
	stepX, stepY := layout.StepX(), layout.StepY()

	topLeft := cam.ToLocal(Vec{0, 0}, vw, vh)
	bottomRight := cam.ToLocal(Vec{vw, vh}, vw, vh)

	// Intersections sit in the middle of the gap between tiles.
	gapX := layout.ItemWidth + layout.ItemGap/2
	gapY := layout.ItemHeight + layout.ItemGap/2

	startX := math.Floor((topLeft.X-gapX)/stepX)*stepX + gapX
	startY := math.Floor((topLeft.Y-gapY)/stepY)*stepY + gapY

	const arm = 4
	for lx := startX; lx <= bottomRight.X; lx += stepX {
		for ly := startY; ly <= bottomRight.Y; ly += stepY {
			p := cam.ToScreen(Vec{lx, ly}, vw, vh)
			vector.StrokeLine(screen, float32(p.X-arm), float32(p.Y), float32(p.X+arm), float32(p.Y), 1, clr, false)
			vector.StrokeLine(screen, float32(p.X), float32(p.Y-arm), float32(p.X), float32(p.Y+arm), 1, clr, false)
		}
	}
}
