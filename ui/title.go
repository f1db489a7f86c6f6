package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"poster-wall/tween"
)

// Word is one independently animated piece of a title. Offset is measured
// in line heights: 1 sits below the line, 0 at rest, -1 above it.
type Word struct {
	Text   string
	Offset float64
}

// SplitWords decomposes text into words, each starting below the line.
func SplitWords(text string) []*Word {
	fields := strings.Fields(text)
	words := make([]*Word, 0, len(fields))
	for _, f := range fields {
		words = append(words, &Word{Text: f, Offset: 1})
	}
	return words
}

// TitleStyle configures the word animation.
type TitleStyle struct {
	Duration float32
	Stagger  float32
	Ease     tween.Func
}

// Title is the animated project title shown while a tile is expanded.
type Title struct {
	style TitleStyle
	text  string
	words []*Word

	line *ebiten.Image
}

func NewTitle(style TitleStyle) *Title {
	return &Title{style: style}
}

// Set replaces the title text. The previous word split is discarded and
// every new word is parked below the line.
func (t *Title) Set(p *tween.Player, text string) {
	t.Revert(p)
	t.text = text
	t.words = SplitWords(text)
}

// Revert drops the word split and any tweens still driving it.
func (t *Title) Revert(p *tween.Player) {
	if p != nil {
		for _, w := range t.words {
			p.Kill(&w.Offset)
		}
	}
	t.words = nil
	t.text = ""
}

func (t *Title) Text() string   { return t.text }
func (t *Title) Words() []*Word { return t.words }

// In slides every word up to rest, one after another.
func (t *Title) In(p *tween.Player) {
	t.animate(p, 0)
}

// Out slides every word up and out of the line.
func (t *Title) Out(p *tween.Player) {
	t.animate(p, -1)
}

func (t *Title) animate(p *tween.Player, to float64) {
	if len(t.words) == 0 {
		return
	}
	fields := make([]*float64, len(t.words))
	for i, w := range t.words {
		fields[i] = &w.Offset
	}
	p.Stagger(fields, to, t.style.Duration, t.style.Ease, 0, t.style.Stagger)
}

// Draw renders the title centred on cx with its top at y. Words are clipped
// to the line so they appear to rise out of it.
func (t *Title) Draw(screen *ebiten.Image, face font.Face, cx, y float64, clr color.Color, drawText func(*ebiten.Image, font.Face, string, int, int, color.Color)) {
	if len(t.words) == 0 || face == nil {
		return
	}
	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	space := font.MeasureString(face, " ").Ceil()

	widths := make([]int, len(t.words))
	total := 0
	for i, w := range t.words {
		widths[i] = font.MeasureString(face, w.Text).Ceil()
		total += widths[i]
	}
	total += space * (len(t.words) - 1)
	if total <= 0 || lineH <= 0 {
		return
	}

	if t.line == nil || t.line.Bounds().Dx() < total || t.line.Bounds().Dy() < lineH {
		if t.line != nil {
			t.line.Deallocate()
		}
		t.line = ebiten.NewImage(total, lineH)
	}
	t.line.Clear()

	x := 0
	for i, w := range t.words {
		drawText(t.line, face, w.Text, x, int(w.Offset*float64(lineH)), clr)
		x += widths[i] + space
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(total)/2, y)
	screen.DrawImage(t.line, op)
}
