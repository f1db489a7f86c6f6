package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// UISystem draws the layers that sit above the tile grid: the dismiss
// overlay, the expanded panel, the title and the debug panel.
type UISystem struct {
	Overlay *Overlay
	Title   *Title
	Panel   *Panel
	Debug   *DebugPanel

	PanelFallback color.Color
	TitleColor    color.Color

	getFontFace   func() font.Face
	getTitleFace  func() font.Face
	getScreenSize func() (int, int)
	drawText      func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)
}

func NewUISystem(getFontFace, getTitleFace func() font.Face, getScreenSize func() (int, int), drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color), style TitleStyle) *UISystem {
	return &UISystem{
		Overlay:       &Overlay{Color: color.RGBA{0, 0, 0, 200}},
		Title:         NewTitle(style),
		Debug:         &DebugPanel{},
		PanelFallback: color.RGBA{60, 60, 70, 255},
		TitleColor:    color.White,
		getFontFace:   getFontFace,
		getTitleFace:  getTitleFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
	}
}

// HitExpanded reports whether a click at (x, y) lands on the expanded panel
// or the overlay behind it.
func (ui *UISystem) HitExpanded(x, y float64) bool {
	if ui.Panel != nil && ui.Panel.Contains(x, y) {
		return true
	}
	return ui.Overlay.Contains(x, y)
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.Overlay.Draw(screen)
	if ui.Panel != nil {
		ui.Panel.Draw(screen, ui.PanelFallback)
	}

	w, h := ui.getScreenSize()
	var face font.Face
	if ui.getTitleFace != nil {
		face = ui.getTitleFace()
	}
	ui.Title.Draw(screen, face, float64(w)/2, float64(h)-float64(h)/8, ui.TitleColor, ui.drawText)

	ui.Debug.Draw(screen, ui.getFontFace, ui.drawText)
}
