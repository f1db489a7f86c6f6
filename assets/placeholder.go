package assets

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Placeholder paints a two-tone poster for content index i of n. Hues are
// spread evenly around the wheel so neighbouring indices differ.
func Placeholder(i, n, w, h int) image.Image {
	if n <= 0 {
		n = 1
	}
	hue := 360 * float64(i%n) / float64(n)
	top := colorful.Hsv(hue, 0.55, 0.85)
	bottom := colorful.Hsv(math.Mod(hue+40, 360), 0.7, 0.35)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := top.BlendLab(bottom, t).Clamped()
		r, g, b := c.RGB255()
		row := color.RGBA{r, g, b, 255}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	// A light band in the lower third stands in for poster lettering.
	band := colorful.Hsv(hue, 0.15, 0.95)
	r, g, b := band.RGB255()
	for y := h * 2 / 3; y < h*2/3+h/20; y++ {
		for x := w / 8; x < w-w/8; x++ {
			img.SetRGBA(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

// Placeholders returns a decoder generating n placeholder posters.
func Placeholders(n, w, h int) Decoder {
	return func(index int) (image.Image, error) {
		return Placeholder(index, n, w, h), nil
	}
}
