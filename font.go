package main

import (
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const UIFontPath = "fonts/Roboto-Regular.ttf"

// LoadUIFont attempts to load UIFontPath at size. If the file is missing it
// falls back to the bundled Go font, and to basicfont.Face7x13 if that fails.
func LoadUIFont(size float64) font.Face {
	data, err := os.ReadFile(UIFontPath)
	if err != nil {
		log.Println("LoadUIFont:", UIFontPath, "not found, using Go Regular:", err)
		data = goregular.TTF
	}
	face, err := newFace(data, size)
	if err != nil {
		log.Println("LoadUIFont: using basic font:", err)
		return basicfont.Face7x13
	}
	return face
}

func newFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	// y is the top of the first line; text.Draw expects the baseline.
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+(i*lineHeight), clr)
	}
}
