// Package expand decides the grid/expanded interaction transitions.
//
// The state is a tagged union of Idle and Expanded. Transitions are pure
// functions returning the next state and the commands the caller must run
// to animate the change; nothing here touches tiles, tweens or the camera.
package expand

import (
	"poster-wall/canvas"
)

// State is either Idle or Expanded.
type State interface {
	isState()
}

// Idle is the initial state: grid interactive, pan free.
type Idle struct{}

// Expanded holds the single active expansion.
type Expanded struct {
	Record Record
}

func (Idle) isState()     {}
func (Expanded) isState() {}

// Record describes the enlarged tile and how to return it.
type Record struct {
	Cell canvas.Cell
	// Origin is the source tile's rect relative to the viewport centre,
	// where the canvas is anchored, so it survives a resize.
	Origin       canvas.Rect
	ContentIndex int
	Title        string
	// Closing is set once the collapse tween has started.
	Closing bool
}

// Request is an expand trigger for one tile.
type Request struct {
	Cell         canvas.Cell
	Rect         canvas.Rect
	ContentIndex int
	Title        string
}

// Viewport is the screen size in pixels.
type Viewport struct {
	W, H float64
}

// Center is the screen point the canvas origin is anchored to.
func (vp Viewport) Center() canvas.Vec {
	return canvas.Vec{X: vp.W / 2, Y: vp.H / 2}
}

// OriginIn returns the source tile's screen rect for viewport vp.
func (r Record) OriginIn(vp Viewport) canvas.Rect {
	c := vp.Center()
	return canvas.Rect{X: r.Origin.X + c.X, Y: r.Origin.Y + c.Y, W: r.Origin.W, H: r.Origin.H}
}

// Timing is a duration, delay and named easing in seconds.
type Timing struct {
	Duration float64
	Delay    float64
	Ease     string
}

// Config holds the geometry and timings of the transitions.
type Config struct {
	WidthFraction float64 // expanded width as a fraction of viewport width
	AspectRatio   float64 // expanded height = width * AspectRatio

	Open        Timing
	Close       Timing
	Resize      Timing
	FadeOut     Timing
	FadeIn      Timing
	TitleDelay  float64
	OverlayFade Timing
}

// DefaultConfig returns the stock transition settings.
func DefaultConfig() Config {
	return Config{
		WidthFraction: 0.25,
		AspectRatio:   1.5,
		Open:          Timing{Duration: 1, Ease: "hop"},
		Close:         Timing{Duration: 1, Ease: "hop"},
		Resize:        Timing{Duration: 0.3, Ease: "power2.out"},
		FadeOut:       Timing{Duration: 0.3, Ease: "power2.out"},
		FadeIn:        Timing{Duration: 0.5, Delay: 0.5, Ease: "power2.out"},
		TitleDelay:    0.5,
		OverlayFade:   Timing{Duration: 0.3, Ease: "power2.out"},
	}
}

// Target returns the centred rectangle of the expanded element.
func (c Config) Target(vp Viewport) canvas.Rect {
	w := vp.W * c.WidthFraction
	h := w * c.AspectRatio
	return canvas.RectAround(vp.Center(), w, h)
}
