package main

import (
	"log"
	"time"

	"poster-wall/canvas"
	"poster-wall/expand"
	"poster-wall/input"
	"poster-wall/pool"
)

// Host methods run on the frame thread from Router.Update.
var _ input.Host = (*Game)(nil)

func (g *Game) BeginDrag(x, y float64, now time.Time) bool {
	return g.camera.BeginDrag(x, y, now)
}

func (g *Game) DragTo(x, y float64, now time.Time) {
	g.camera.DragTo(x, y, now)
}

func (g *Game) EndDrag(now time.Time) {
	g.camera.EndDrag()
}

// Click collapses when something is enlarged, otherwise it hit-tests the
// tile under the pointer.
func (g *Game) Click(x, y float64) {
	if g.machine.Expanded() {
		if g.ui.HitExpanded(x, y) {
			g.Collapse()
		}
		return
	}
	if g.camera.Dragging() {
		return
	}
	local := g.camera.ToLocal(canvas.Vec{X: x, Y: y}, float64(g.screenWidth), float64(g.screenHeight))
	if t, ok := g.tiles.TileAt(local.X, local.Y); ok {
		g.tiles.Click(t.Cell)
	}
}

// Resize re-addresses the grid while idle. While a tile is enlarged only
// the panel is refitted.
func (g *Game) Resize(w, h int) {
	g.screenWidth, g.screenHeight = w, h
	if g.machine.Expanded() {
		g.run(g.machine.Resize(g.viewport()))
		return
	}
	g.refresh(g.now())
}

func (g *Game) Collapse() {
	g.run(g.machine.Collapse(g.viewport()))
}

func (g *Game) ToggleDebug() {
	g.ui.Debug.Toggle()
}

func (g *Game) RequestScreenshot() {
	g.screenshotRequested = true
}

// expandTile is the pool's click handler.
func (g *Game) expandTile(t *pool.Tile) {
	if g.machine.Expanded() {
		g.Collapse()
		return
	}
	log.Println("expand", t.ID(), "content", t.ContentIndex)
	req := expand.Request{Cell: t.Cell, Rect: g.tileScreenRect(t), ContentIndex: t.ContentIndex}
	g.run(g.machine.Expand(req, g.viewport()))
}
