package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DebugPanel shows canvas statistics in the top-left corner.
type DebugPanel struct {
	Visible bool
	Lines   []string
	Error   string
}

func (d *DebugPanel) Toggle() {
	d.Visible = !d.Visible
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	if d == nil || !d.Visible || getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	lines := d.Lines
	if d.Error != "" {
		lines = append(append([]string(nil), lines...), "error: "+d.Error)
	}
	if len(lines) == 0 {
		return
	}

	lineH := (face.Metrics().Ascent + face.Metrics().Descent).Ceil()
	w := 0
	for _, l := range lines {
		if lw := font.MeasureString(face, l).Ceil(); lw > w {
			w = lw
		}
	}
	pw, ph := w+16, lineH*len(lines)+16
	vector.DrawFilledRect(screen, 10, 10, float32(pw), float32(ph), color.RGBA{40, 40, 40, 200}, false)
	drawText(screen, face, strings.Join(lines, "\n"), 18, 18, color.RGBA{220, 220, 220, 255})
}
