package main

import (
	"poster-wall/canvas"
	"poster-wall/pool"
)

func (g *Game) localToScreen(x, y float64) canvas.Vec {
	return g.camera.ToScreen(canvas.Vec{X: x, Y: y}, float64(g.screenWidth), float64(g.screenHeight))
}

// tileScreenRect is a tile's footprint on screen at the current offset.
func (g *Game) tileScreenRect(t *pool.Tile) canvas.Rect {
	r := g.tiles.Rect(t)
	p := g.localToScreen(r.X, r.Y)
	return canvas.Rect{X: p.X, Y: p.Y, W: r.W, H: r.H}
}

// onScreen reports whether r intersects the viewport.
func (g *Game) onScreen(r canvas.Rect) bool {
	return r.X+r.W > 0 && r.Y+r.H > 0 && r.X < float64(g.screenWidth) && r.Y < float64(g.screenHeight)
}
