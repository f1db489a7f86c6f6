package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"poster-wall/canvas"
	"poster-wall/pool"
	"poster-wall/ui"
)

// drawTiles renders every materialised tile that is on screen, shown and
// has its texture.
func (g *Game) drawTiles(screen *ebiten.Image) {
	hovered := g.hoveredTile()
	g.tiles.Each(func(t *pool.Tile) {
		if !t.Visible || !t.Ready || t.Alpha <= 0 {
			return
		}
		r := g.tileScreenRect(t)
		if !g.onScreen(r) {
			return
		}
		g.drawTile(screen, t, r, t == hovered)
	})
}

// hoveredTile is the tile under the pointer of the last routed snapshot,
// or nil while expanded or dragging.
func (g *Game) hoveredTile() *pool.Tile {
	if g.machine.Expanded() || g.router.Dragging() {
		return nil
	}
	x, y, ok := g.router.Pointer()
	if !ok {
		return nil
	}
	local := g.camera.ToLocal(canvas.Vec{X: x, Y: y}, float64(g.screenWidth), float64(g.screenHeight))
	t, _ := g.tiles.TileAt(local.X, local.Y)
	return t
}

func (g *Game) drawTile(screen *ebiten.Image, t *pool.Tile, r canvas.Rect, hovered bool) {
	shadow := ColorShadow
	shadow.A = uint8(float64(shadow.A) * t.Alpha)
	vector.DrawFilledRect(screen, float32(r.X+ShadowOffset), float32(r.Y+ShadowOffset), float32(r.W), float32(r.H), shadow, false)

	ui.DrawImageCover(screen, t.Image, r, t.Alpha, ColorPanelFallback)

	if hovered {
		vector.StrokeRect(screen,
			float32(r.X-BorderOffset), float32(r.Y-BorderOffset),
			float32(r.W+2*BorderOffset), float32(r.H+2*BorderOffset),
			BorderThickness, ColorTileHover, false)
	}
	if g.ui.Debug.Visible {
		ebitenutil.DebugPrintAt(screen, t.ID(), int(r.X+4), int(r.Y+4))
	}
}

