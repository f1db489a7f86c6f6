package tween

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// Func is the gween easing signature: elapsed t, begin b, change c, duration d.
type Func = ease.TweenFunc

// CubicBezier builds a CSS-style cubic-bezier easing with control points
// (x1,y1) and (x2,y2). The curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Func {
	curve := bezier{x1: x1, y1: y1, x2: x2, y2: y2}
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		p := float64(t / d)
		return b + c*float32(curve.at(p))
	}
}

type bezier struct {
	x1, y1, x2, y2 float64
}

func sample(a1, a2, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*a1 + 3*u*t*t*a2 + t*t*t
}

func slope(a1, a2, t float64) float64 {
	u := 1 - t
	return 3*u*u*a1 + 6*u*t*(a2-a1) + 3*t*t*(1-a2)
}

// at solves x(t) = p for t and returns y(t).
func (b bezier) at(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}

	// Newton first, bisection when the slope is too flat.
	t := p
	for i := 0; i < 8; i++ {
		x := sample(b.x1, b.x2, t) - p
		if math.Abs(x) < 1e-7 {
			return sample(b.y1, b.y2, t)
		}
		dx := slope(b.x1, b.x2, t)
		if math.Abs(dx) < 1e-6 {
			break
		}
		t -= x / dx
	}

	lo, hi := 0.0, 1.0
	t = p
	for i := 0; i < 60; i++ {
		x := sample(b.x1, b.x2, t)
		if math.Abs(x-p) < 1e-7 {
			break
		}
		if x < p {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return sample(b.y1, b.y2, t)
}

// ParseCurve parses a "x1, y1, x2, y2" curve descriptor.
func ParseCurve(desc string) (Func, error) {
	parts := strings.Split(desc, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("curve %q: want 4 control values, got %d", desc, len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", desc, err)
		}
		v[i] = f
	}
	if v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
		return nil, fmt.Errorf("curve %q: x control points must lie in [0,1]", desc)
	}
	return CubicBezier(v[0], v[1], v[2], v[3]), nil
}

// Eases maps easing names to functions.
type Eases map[string]Func

// NewEases returns a registry with the stock power curves.
func NewEases() Eases {
	return Eases{
		"linear":       ease.Linear,
		"power1.out":   ease.OutQuad,
		"power2.out":   ease.OutCubic,
		"power3.out":   ease.OutQuart,
		"power4.out":   ease.OutQuint,
		"power2.in":    ease.InCubic,
		"power2.inOut": ease.InOutCubic,
	}
}

// Register adds a named custom curve from a descriptor.
func (e Eases) Register(name, desc string) error {
	fn, err := ParseCurve(desc)
	if err != nil {
		return err
	}
	e[name] = fn
	return nil
}

// Get returns the named easing, falling back to linear for unknown names.
func (e Eases) Get(name string) Func {
	if fn, ok := e[name]; ok {
		return fn
	}
	return ease.Linear
}
