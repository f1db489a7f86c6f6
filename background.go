package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"poster-wall/canvas"
)

// drawBackground renders the gap guides and the origin marker.
func (g *Game) drawBackground(screen *ebiten.Image) {
	canvas.DrawGuides(g.camera, g.layout, screen, ColorGuide)

	if !g.ui.Debug.Visible {
		return
	}
	o := g.localToScreen(0, 0)
	vector.StrokeLine(screen, float32(o.X-15), float32(o.Y), float32(o.X+15), float32(o.Y), 2, ColorOrigin, false)
	vector.StrokeLine(screen, float32(o.X), float32(o.Y-15), float32(o.X), float32(o.Y+15), 2, ColorOrigin, false)
}
