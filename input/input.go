package input

import (
	"math"
	"time"
)

// Host receives the events the router derives from raw input.
type Host interface {
	// BeginDrag is called on pointer press; the host decides whether a
	// drag may start.
	BeginDrag(x, y float64, now time.Time) bool
	DragTo(x, y float64, now time.Time)
	EndDrag(now time.Time)
	// Click is called on release when the pointer stayed within the slop.
	Click(x, y float64)
	// Resize is called once the viewport size has settled.
	Resize(w, h int)
	Collapse()
	ToggleDebug()
	RequestScreenshot()
}

// Snapshot is the state of the single tracked pointer for one frame.
type Snapshot struct {
	X, Y float64
	Down bool

	// Keys pressed this frame.
	Escape, Debug, Screenshot bool
}

// Source produces one snapshot per frame.
type Source interface {
	Poll() Snapshot
}

// Config holds the router tunables.
type Config struct {
	ClickSlop      float64       // px per axis a press may move and still count as a click
	ResizeDebounce time.Duration // quiet period before a resize is delivered
}

func DefaultConfig() Config {
	return Config{ClickSlop: 5, ResizeDebounce: 150 * time.Millisecond}
}

// Router turns snapshots into Host calls.
type Router struct {
	cfg    Config
	source Source
	host   Host

	down   bool
	startX float64
	startY float64
	moved  bool

	pointerX, pointerY float64
	pointerSeen        bool

	width, height int
	pendingW      int
	pendingH      int
	pendingAt     time.Time
	pending       bool
}

func NewRouter(cfg Config, source Source) *Router {
	return &Router{cfg: cfg, source: source}
}

// Bind attaches h and returns the function detaching it. Input arriving
// while unbound is dropped.
func (r *Router) Bind(h Host) (unbind func()) {
	r.host = h
	r.down = false
	return func() {
		if r.host == h {
			r.host = nil
			r.down = false
		}
	}
}

func (r *Router) Bound() bool { return r.host != nil }

// Update polls the source once and dispatches the result.
func (r *Router) Update(now time.Time) {
	if r.host == nil {
		return
	}
	r.Feed(r.source.Poll(), now)
}

// Feed dispatches one snapshot.
func (r *Router) Feed(s Snapshot, now time.Time) {
	if r.host == nil {
		return
	}
	r.flushResize(now)
	r.pointerX, r.pointerY, r.pointerSeen = s.X, s.Y, true

	if s.Debug {
		r.host.ToggleDebug()
	}
	if s.Screenshot {
		r.host.RequestScreenshot()
	}
	if s.Escape {
		r.host.Collapse()
	}

	switch {
	case s.Down && !r.down:
		r.down = true
		r.moved = false
		r.startX, r.startY = s.X, s.Y
		r.host.BeginDrag(s.X, s.Y, now)
	case s.Down && r.down:
		if math.Abs(s.X-r.startX) > r.cfg.ClickSlop || math.Abs(s.Y-r.startY) > r.cfg.ClickSlop {
			r.moved = true
		}
		r.host.DragTo(s.X, s.Y, now)
	case !s.Down && r.down:
		r.down = false
		r.host.EndDrag(now)
		if !r.moved {
			r.host.Click(s.X, s.Y)
		}
		r.moved = false
	}
}

// Layout records the current viewport size. The first size is delivered
// at once; later changes wait for the debounce window.
func (r *Router) Layout(w, h int, now time.Time) {
	if r.width == 0 && r.height == 0 && !r.pending {
		r.width, r.height = w, h
		if r.host != nil {
			r.host.Resize(w, h)
		}
		return
	}
	if r.pending {
		if w == r.pendingW && h == r.pendingH {
			return
		}
	} else if w == r.width && h == r.height {
		return
	}
	r.pendingW, r.pendingH = w, h
	r.pendingAt = now
	r.pending = true
}

func (r *Router) flushResize(now time.Time) {
	if !r.pending || now.Sub(r.pendingAt) < r.cfg.ResizeDebounce {
		return
	}
	r.pending = false
	if r.pendingW == r.width && r.pendingH == r.height {
		return
	}
	r.width, r.height = r.pendingW, r.pendingH
	r.host.Resize(r.width, r.height)
}

// Pointer returns the position from the last dispatched snapshot. ok is
// false until one has been seen.
func (r *Router) Pointer() (x, y float64, ok bool) {
	return r.pointerX, r.pointerY, r.pointerSeen
}

// Dragging reports whether the pointer is held and has left the click slop.
func (r *Router) Dragging() bool {
	return r.down && r.moved
}
