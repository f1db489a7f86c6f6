package expand

import (
	"poster-wall/canvas"
)

// Expand enlarges the requested tile. It is a no-op unless s is Idle.
func Expand(s State, req Request, vp Viewport, cfg Config) (State, []Command) {
	if _, ok := s.(Idle); !ok {
		return s, nil
	}
	c := vp.Center()
	rec := Record{
		Cell:         req.Cell,
		Origin:       canvas.Rect{X: req.Rect.X - c.X, Y: req.Rect.Y - c.Y, W: req.Rect.W, H: req.Rect.H},
		ContentIndex: req.ContentIndex,
		Title:        req.Title,
	}
	cmds := []Command{
		{Kind: FreezePan},
		{Kind: HideTile, Cell: rec.Cell},
		{Kind: SetTitle, Title: rec.Title},
		{Kind: TitleIn, Timing: Timing{Delay: cfg.TitleDelay}},
		{Kind: FadeSiblings, Cell: rec.Cell, Timing: cfg.FadeOut},
		{Kind: CreateExpanded, Cell: rec.Cell, ContentIndex: rec.ContentIndex, Rect: req.Rect},
		{Kind: TweenExpanded, Rect: cfg.Target(vp), Timing: cfg.Open},
		{Kind: ShowOverlay, Timing: cfg.OverlayFade},
	}
	return Expanded{Record: rec}, cmds
}

// Collapse starts returning the expanded element to the source tile's
// screen rect in the current viewport. It is a no-op when Idle or already
// closing.
func Collapse(s State, vp Viewport, cfg Config) (State, []Command) {
	e, ok := s.(Expanded)
	if !ok || e.Record.Closing {
		return s, nil
	}
	e.Record.Closing = true
	cmds := []Command{
		{Kind: TitleOut},
		{Kind: HideOverlay, Timing: cfg.OverlayFade},
		{Kind: RestoreSiblings, Cell: e.Record.Cell, Timing: cfg.FadeIn},
		{Kind: TweenExpanded, Rect: e.Record.OriginIn(vp), Timing: cfg.Close, Notify: true},
	}
	return e, cmds
}

// Finish completes a collapse once its tween has ended.
func Finish(s State) (State, []Command) {
	e, ok := s.(Expanded)
	if !ok || !e.Record.Closing {
		return s, nil
	}
	cmds := []Command{
		{Kind: RemoveExpanded},
		{Kind: ShowTile, Cell: e.Record.Cell},
		{Kind: UnfreezePan},
		{Kind: ResetVelocity},
	}
	return Idle{}, cmds
}

// Resize re-targets the open expanded element at the new viewport centre.
// Idle and closing states emit nothing; the caller re-addresses the grid
// when Idle.
func Resize(s State, vp Viewport, cfg Config) (State, []Command) {
	e, ok := s.(Expanded)
	if !ok || e.Record.Closing {
		return s, nil
	}
	return s, []Command{{Kind: TweenExpanded, Rect: cfg.Target(vp), Timing: cfg.Resize}}
}

// Machine holds the current state and resolves titles for new expansions.
type Machine struct {
	cfg   Config
	state State
	title func(contentIndex int) string
}

// NewMachine returns a machine in Idle. title may be nil.
func NewMachine(cfg Config, title func(int) string) *Machine {
	return &Machine{cfg: cfg, state: Idle{}, title: title}
}

func (m *Machine) State() State { return m.state }

// Active returns the expansion record when one exists.
func (m *Machine) Active() (Record, bool) {
	e, ok := m.state.(Expanded)
	return e.Record, ok
}

// Expanded reports whether an expansion exists, closing or not.
func (m *Machine) Expanded() bool {
	_, ok := m.state.(Expanded)
	return ok
}

func (m *Machine) Expand(req Request, vp Viewport) []Command {
	if req.Title == "" && m.title != nil {
		if _, idle := m.state.(Idle); idle {
			req.Title = m.title(req.ContentIndex)
		}
	}
	var cmds []Command
	m.state, cmds = Expand(m.state, req, vp, m.cfg)
	return cmds
}

func (m *Machine) Collapse(vp Viewport) []Command {
	var cmds []Command
	m.state, cmds = Collapse(m.state, vp, m.cfg)
	return cmds
}

func (m *Machine) Finish() []Command {
	var cmds []Command
	m.state, cmds = Finish(m.state)
	return cmds
}

func (m *Machine) Resize(vp Viewport) []Command {
	var cmds []Command
	m.state, cmds = Resize(m.state, vp, m.cfg)
	return cmds
}
