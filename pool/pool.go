// Package pool owns the tiles materialised on the canvas.
//
// Tiles are created lazily as cells become visible and are never removed;
// the pool only grows for the lifetime of a canvas.
package pool

import (
	"github.com/hajimehoshi/ebiten/v2"

	"poster-wall/canvas"
)

// Tile is one materialised grid cell.
type Tile struct {
	Cell         canvas.Cell
	X, Y         float64 // canvas-local top-left
	ContentIndex int

	Visible bool
	Alpha   float64

	// Ready is false until the tile's image has been delivered.
	Ready bool
	Image *ebiten.Image
}

// ID returns the "<col>,<row>" identifier of the tile's cell.
func (t *Tile) ID() string { return t.Cell.ID() }

// Loader resolves content images. done may run later, on the frame thread.
type Loader interface {
	Request(index int, done func(*ebiten.Image))
}

// ClickFunc is the interaction handler registered on every tile.
type ClickFunc func(*Tile)

// Pool is the set of live tiles keyed by cell.
type Pool struct {
	layout  canvas.Layout
	count   int
	loader  Loader
	onClick ClickFunc

	tiles map[canvas.Cell]*Tile
	order []*Tile
}

// New creates an empty pool. count is the length of the content list.
func New(layout canvas.Layout, count int, loader Loader, onClick ClickFunc) *Pool {
	return &Pool{
		layout:  layout,
		count:   count,
		loader:  loader,
		onClick: onClick,
		tiles:   make(map[canvas.Cell]*Tile),
	}
}

// EnsureVisible materialises every cell that has no tile yet and returns
// how many were created.
func (p *Pool) EnsureVisible(cells []canvas.Cell) int {
	created := 0
	for _, c := range cells {
		if _, ok := p.tiles[c]; ok {
			continue
		}
		r := p.layout.CellRect(c)
		t := &Tile{
			Cell:         c,
			X:            r.X,
			Y:            r.Y,
			ContentIndex: canvas.ContentIndex(c.Col, c.Row, p.count),
			Visible:      true,
			Alpha:        1,
		}
		p.tiles[c] = t
		p.order = append(p.order, t)
		created++

		if p.loader != nil {
			p.loader.Request(t.ContentIndex, func(img *ebiten.Image) {
				t.Image = img
				t.Ready = true
			})
		}
	}
	return created
}

func (p *Pool) Hide(c canvas.Cell) {
	if t, ok := p.tiles[c]; ok {
		t.Visible = false
	}
}

func (p *Pool) Show(c canvas.Cell) {
	if t, ok := p.tiles[c]; ok {
		t.Visible = true
	}
}

func (p *Pool) Get(c canvas.Cell) (*Tile, bool) {
	t, ok := p.tiles[c]
	return t, ok
}

func (p *Pool) Len() int { return len(p.order) }

// Each visits tiles in creation order.
func (p *Pool) Each(fn func(*Tile)) {
	for _, t := range p.order {
		fn(t)
	}
}

// Rect returns a tile's footprint in canvas-local space.
func (p *Pool) Rect(t *Tile) canvas.Rect {
	return canvas.Rect{X: t.X, Y: t.Y, W: p.layout.ItemWidth, H: p.layout.ItemHeight}
}

// TileAt returns the visible tile under a canvas-local point.
func (p *Pool) TileAt(x, y float64) (*Tile, bool) {
	c, ok := p.layout.CellAt(x, y)
	if !ok {
		return nil, false
	}
	t, ok := p.tiles[c]
	if !ok || !t.Visible {
		return nil, false
	}
	return t, true
}

// Click runs the interaction handler for the tile at c.
func (p *Pool) Click(c canvas.Cell) {
	t, ok := p.tiles[c]
	if !ok || p.onClick == nil {
		return
	}
	p.onClick(t)
}
