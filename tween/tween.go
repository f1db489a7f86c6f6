// Package tween animates float64 fields over time on top of gween.
//
// A Tween drives one or more fields from their value at start time to a
// target value. Tweens are owned by a Player which the caller advances once
// per frame with Update(dt). Starting a tween on a field that another live
// tween is animating takes the field away from the older tween.
package tween

import (
	"github.com/tanema/gween"
)

// Prop is one animated field and its end value.
type Prop struct {
	Field *float64
	To    float64
}

// To is shorthand for building a Prop.
func To(field *float64, to float64) Prop {
	return Prop{Field: field, To: to}
}

type track struct {
	field *float64
	to    float64
	tw    *gween.Tween
}

// Tween animates a set of fields with a shared duration, easing and delay.
type Tween struct {
	tracks     []track
	duration   float32
	fn         Func
	delay      float32
	elapsed    float32
	started    bool
	onComplete func()

	// Done is set once every track has finished or the tween was killed.
	Done bool
}

// New creates a tween over duration seconds.
func New(duration float32, fn Func, props ...Prop) *Tween {
	t := &Tween{duration: duration, fn: fn}
	for _, p := range props {
		t.tracks = append(t.tracks, track{field: p.Field, to: p.To})
	}
	return t
}

// Delay postpones the start by d seconds. Start values are captured when
// the delay runs out.
func (t *Tween) Delay(d float32) *Tween {
	t.delay = d
	return t
}

// OnComplete registers a callback run once when the tween finishes.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

func (t *Tween) start() {
	t.started = true
	for i := range t.tracks {
		tr := &t.tracks[i]
		tr.tw = gween.New(float32(*tr.field), float32(tr.to), t.duration, t.fn)
	}
}

// Update advances the tween by dt seconds and reports whether it is done.
func (t *Tween) Update(dt float32) bool {
	if t.Done {
		return true
	}
	if !t.started {
		t.elapsed += dt
		if t.elapsed < t.delay {
			return false
		}
		dt = t.elapsed - t.delay
		t.start()
	}

	allDone := true
	for i := range t.tracks {
		tr := &t.tracks[i]
		val, finished := tr.tw.Update(dt)
		if finished {
			*tr.field = tr.to
		} else {
			*tr.field = float64(val)
			allDone = false
		}
	}
	if allDone {
		t.Done = true
		if t.onComplete != nil {
			t.onComplete()
		}
	}
	return t.Done
}

// release drops the tracks animating any of fields. It reports whether the
// tween has nothing left to animate.
func (t *Tween) release(fields map[*float64]struct{}) bool {
	kept := t.tracks[:0]
	for _, tr := range t.tracks {
		if _, ok := fields[tr.field]; !ok {
			kept = append(kept, tr)
		}
	}
	t.tracks = kept
	return len(t.tracks) == 0
}

// Animates reports whether the tween drives field.
func (t *Tween) Animates(field *float64) bool {
	for _, tr := range t.tracks {
		if tr.field == field {
			return true
		}
	}
	return false
}
