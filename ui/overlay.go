package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"poster-wall/canvas"
)

// Overlay is the full-screen dismiss layer behind the expanded element.
type Overlay struct {
	Color  color.RGBA
	Alpha  float64
	Active bool
}

// Contains reports whether a click at (x, y) lands on the overlay. An
// active overlay covers the whole screen.
func (o *Overlay) Contains(x, y float64) bool {
	return o.Active
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.Alpha <= 0 {
		return
	}
	c := o.Color
	c.A = uint8(float64(c.A) * clamp01(o.Alpha))
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

// Panel is the enlarged copy of a tile. X, Y, W and H are tweened directly.
type Panel struct {
	Cell         canvas.Cell
	ContentIndex int
	Image        *ebiten.Image
	X, Y, W, H   float64
}

func NewPanel(cell canvas.Cell, contentIndex int, img *ebiten.Image, at canvas.Rect) *Panel {
	return &Panel{Cell: cell, ContentIndex: contentIndex, Image: img, X: at.X, Y: at.Y, W: at.W, H: at.H}
}

func (p *Panel) Rect() canvas.Rect {
	return canvas.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

func (p *Panel) Contains(x, y float64) bool {
	return p.Rect().Contains(x, y)
}

func (p *Panel) Draw(screen *ebiten.Image, fallback color.Color) {
	if p.W <= 0 || p.H <= 0 {
		return
	}
	DrawImageCover(screen, p.Image, p.Rect(), 1, fallback)
}

// DrawImageCover scales img to fill r, cropping the overflow like CSS
// object-fit: cover. A nil img draws a flat fallback rectangle.
func DrawImageCover(screen, img *ebiten.Image, r canvas.Rect, alpha float64, fallback color.Color) {
	if alpha <= 0 {
		return
	}
	if img == nil {
		cr, cg, cb, ca := fallback.RGBA()
		c := color.RGBA{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(float64(ca>>8) * clamp01(alpha))}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		return
	}

	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	scale := r.W / iw
	if s := r.H / ih; s > scale {
		scale = s
	}
	// Source window that maps onto r after scaling.
	sw, sh := r.W/scale, r.H/scale
	sx := float64(b.Min.X) + (iw-sw)/2
	sy := float64(b.Min.Y) + (ih-sh)/2
	src := img.SubImage(rectInt(sx, sy, sw, sh)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(src, op)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func rectInt(x, y, w, h float64) image.Rectangle {
	return image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
}
