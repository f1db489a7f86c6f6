package canvas

import (
	"fmt"
	"math"
)

// Vec is a 2D vector in pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RectAround builds a rectangle of the given size centred on c.
func RectAround(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Cell is one addressable grid position.
type Cell struct {
	Col, Row int
}

// ID returns the "<col>,<row>" identifier of the cell.
func (c Cell) ID() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}

// Layout describes tile geometry on the canvas.
type Layout struct {
	ItemWidth  float64
	ItemHeight float64
	ItemGap    float64
	// Overscan scales the viewport before addressing so tiles exist before
	// they scroll into view.
	Overscan float64
}

func (l Layout) StepX() float64 { return l.ItemWidth + l.ItemGap }
func (l Layout) StepY() float64 { return l.ItemHeight + l.ItemGap }

// CellRect returns the canvas-local footprint of a cell.
func (l Layout) CellRect(c Cell) Rect {
	return Rect{
		X: float64(c.Col) * l.StepX(),
		Y: float64(c.Row) * l.StepY(),
		W: l.ItemWidth,
		H: l.ItemHeight,
	}
}

// CellAt returns the cell whose footprint contains the canvas-local point.
// Points in the gap between tiles report false.
func (l Layout) CellAt(x, y float64) (Cell, bool) {
	c := Cell{
		Col: int(math.Floor(x / l.StepX())),
		Row: int(math.Floor(y / l.StepY())),
	}
	return c, l.CellRect(c).Contains(x, y)
}

// Range is an inclusive block of cells.
type Range struct {
	StartCol, EndCol int
	StartRow, EndRow int
}

func (r Range) Contains(c Cell) bool {
	return c.Col >= r.StartCol && c.Col <= r.EndCol &&
		c.Row >= r.StartRow && c.Row <= r.EndRow
}

// Len returns the number of cells in the range.
func (r Range) Len() int {
	if r.EndCol < r.StartCol || r.EndRow < r.StartRow {
		return 0
	}
	return (r.EndCol - r.StartCol + 1) * (r.EndRow - r.StartRow + 1)
}

// Cells enumerates the range row by row.
func (r Range) Cells() []Cell {
	out := make([]Cell, 0, r.Len())
	for row := r.StartRow; row <= r.EndRow; row++ {
		for col := r.StartCol; col <= r.EndCol; col++ {
			out = append(out, Cell{Col: col, Row: row})
		}
	}
	return out
}

// Visible returns the cells intersecting the overscanned viewport window for
// a camera offset. The window is centred on -offset in canvas-local space.
func (l Layout) Visible(offset Vec, viewW, viewH float64) Range {
	w := viewW * l.Overscan
	h := viewH * l.Overscan
	stepX, stepY := l.StepX(), l.StepY()

	return Range{
		StartCol: int(math.Floor((-offset.X - w/2) / stepX)),
		EndCol:   int(math.Ceil((-offset.X + w/2) / stepX)),
		StartRow: int(math.Floor((-offset.Y - h/2) / stepY)),
		EndRow:   int(math.Ceil((-offset.Y + h/2) / stepY)),
	}
}

// ContentIndex maps a cell onto a content list of length n.
func ContentIndex(col, row, n int) int {
	if n <= 0 {
		return 0
	}
	s := col + row
	if s < 0 {
		s = -s
	}
	return s % n
}
