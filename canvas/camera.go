package canvas

import (
	"math"
	"time"
)

// Mode is the interaction mode of the camera.
type Mode int

const (
	Free Mode = iota
	Frozen
)

func (m Mode) String() string {
	if m == Frozen {
		return "frozen"
	}
	return "free"
}

// PanConfig holds the tunables of the pan engine.
type PanConfig struct {
	Ease              float64       // fraction of the remaining distance covered per step
	MomentumFactor    float64       // ms of velocity projected onto the target on release
	VelocityThreshold float64       // px/ms below which release adds no momentum
	MinSampleInterval time.Duration // floor for drag velocity sampling
	RefreshDistance   float64       // px moved before addressing is refreshed
	RefreshInterval   time.Duration // time elapsed before addressing is refreshed
}

// DefaultPanConfig returns the stock pan tunables.
func DefaultPanConfig() PanConfig {
	return PanConfig{
		Ease:              0.075,
		MomentumFactor:    200,
		VelocityThreshold: 0.1,
		MinSampleInterval: 10 * time.Millisecond,
		RefreshDistance:   100,
		RefreshInterval:   120 * time.Millisecond,
	}
}

// Camera is the pan offset of the tile container. Current chases Target
// with exponential easing; Target moves only through drag input and
// momentum.
type Camera struct {
	Current  Vec
	Target   Vec
	Velocity Vec // px/ms

	cfg      PanConfig
	mode     Mode
	dragging bool

	lastPointer Vec
	lastSample  time.Time

	lastRefreshPos Vec
	lastRefresh    time.Time
}

func NewCamera(cfg PanConfig) *Camera {
	return &Camera{cfg: cfg}
}

func (c *Camera) Mode() Mode     { return c.mode }
func (c *Camera) Dragging() bool { return c.dragging }

// Freeze stops the camera and drops any drag in progress.
func (c *Camera) Freeze() {
	c.mode = Frozen
	c.dragging = false
}

func (c *Camera) Unfreeze() {
	c.mode = Free
}

func (c *Camera) ResetVelocity() {
	c.Velocity = Vec{}
}

// Step advances Current one frame toward Target and reports whether the
// grid addressing should be refreshed.
func (c *Camera) Step(now time.Time) bool {
	if c.mode == Frozen {
		return false
	}
	c.Current = c.Current.Add(c.Target.Sub(c.Current).Scale(c.cfg.Ease))

	moved := c.Current.Sub(c.lastRefreshPos).Len()
	return moved > c.cfg.RefreshDistance || now.Sub(c.lastRefresh) > c.cfg.RefreshInterval
}

// MarkRefreshed records that addressing ran for the current position.
func (c *Camera) MarkRefreshed(now time.Time) {
	c.lastRefreshPos = c.Current
	c.lastRefresh = now
}

// BeginDrag starts a drag at the given pointer position. It refuses while
// frozen.
func (c *Camera) BeginDrag(x, y float64, now time.Time) bool {
	if c.mode == Frozen {
		return false
	}
	c.dragging = true
	c.lastPointer = Vec{x, y}
	c.lastSample = now
	c.Velocity = Vec{}
	return true
}

// DragTo feeds a pointer sample. The delta moves Target, not Current, so
// the canvas catches up with the pointer through the ease.
func (c *Camera) DragTo(x, y float64, now time.Time) {
	if !c.dragging || c.mode == Frozen {
		return
	}
	p := Vec{x, y}
	delta := p.Sub(c.lastPointer)

	elapsed := now.Sub(c.lastSample)
	if elapsed < c.cfg.MinSampleInterval {
		elapsed = c.cfg.MinSampleInterval
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	c.Velocity = delta.Scale(1 / ms)

	c.Target = c.Target.Add(delta)
	c.lastPointer = p
	c.lastSample = now
}

// EndDrag finishes a drag. Fast releases project the velocity onto Target
// once; there is no decay afterwards beyond the ease.
func (c *Camera) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	if c.mode == Frozen {
		return
	}
	if math.Abs(c.Velocity.X) > c.cfg.VelocityThreshold || math.Abs(c.Velocity.Y) > c.cfg.VelocityThreshold {
		c.Target = c.Target.Add(c.Velocity.Scale(c.cfg.MomentumFactor))
	}
}

// ToScreen converts a canvas-local point to screen space. The canvas origin
// sits at the viewport centre.
func (c *Camera) ToScreen(local Vec, viewW, viewH float64) Vec {
	return Vec{local.X + c.Current.X + viewW/2, local.Y + c.Current.Y + viewH/2}
}

// ToLocal converts a screen point to canvas-local space.
func (c *Camera) ToLocal(screen Vec, viewW, viewH float64) Vec {
	return Vec{screen.X - c.Current.X - viewW/2, screen.Y - c.Current.Y - viewH/2}
}
