package expand

import (
	"reflect"
	"testing"

	"poster-wall/canvas"
)

var vp = Viewport{W: 1000, H: 800}

func request() Request {
	return Request{
		Cell:         canvas.Cell{Col: 2, Row: 3},
		Rect:         canvas.Rect{X: 340, Y: 310, W: 120, H: 180},
		ContentIndex: 5,
		Title:        "Chromatic Drift",
	}
}

func TestExpandFromIdle(t *testing.T) {
	s, cmds := Expand(Idle{}, request(), vp, DefaultConfig())

	e, ok := s.(Expanded)
	if !ok {
		t.Fatalf("state = %T, want Expanded", s)
	}
	if e.Record.OriginIn(vp) != request().Rect || e.Record.Cell != request().Cell {
		t.Errorf("record = %+v", e.Record)
	}

	want := []Kind{FreezePan, HideTile, SetTitle, TitleIn, FadeSiblings, CreateExpanded, TweenExpanded, ShowOverlay}
	if got := Kinds(cmds); !reflect.DeepEqual(got, want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}

	tw := cmds[6]
	wantRect := canvas.Rect{X: 375, Y: 212.5, W: 250, H: 375}
	if tw.Rect != wantRect {
		t.Errorf("expanded target = %+v, want %+v", tw.Rect, wantRect)
	}
	if tw.Timing.Ease != "hop" || tw.Notify {
		t.Errorf("open tween timing = %+v notify=%v", tw.Timing, tw.Notify)
	}
	if cmds[5].Rect != request().Rect {
		t.Errorf("expanded element created at %+v, want origin", cmds[5].Rect)
	}
}

func TestExpandWhileExpandedIsNoop(t *testing.T) {
	s, _ := Expand(Idle{}, request(), vp, DefaultConfig())

	other := request()
	other.Cell = canvas.Cell{Col: 0, Row: 0}
	s2, cmds := Expand(s, other, vp, DefaultConfig())
	if len(cmds) != 0 {
		t.Errorf("second expand emitted %v", Kinds(cmds))
	}
	if s2.(Expanded).Record.Cell != request().Cell {
		t.Error("second expand replaced the active record")
	}
}

func TestCollapseRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	s, _ := Expand(Idle{}, request(), vp, cfg)

	s, cmds := Collapse(s, vp, cfg)
	want := []Kind{TitleOut, HideOverlay, RestoreSiblings, TweenExpanded}
	if got := Kinds(cmds); !reflect.DeepEqual(got, want) {
		t.Fatalf("collapse commands = %v, want %v", got, want)
	}
	back := cmds[3]
	if back.Rect != request().Rect || !back.Notify {
		t.Errorf("collapse tween = %+v", back)
	}
	if back.Rect.Center() != request().Rect.Center() {
		t.Errorf("collapse centre = %v, want %v", back.Rect.Center(), request().Rect.Center())
	}
	if cmds[2].Timing.Delay <= 0 {
		t.Error("sibling restore has no delay")
	}
	if !s.(Expanded).Record.Closing {
		t.Error("record not marked closing")
	}

	// Second collapse while closing does nothing.
	if _, again := Collapse(s, vp, cfg); len(again) != 0 {
		t.Errorf("collapse while closing emitted %v", Kinds(again))
	}

	s, cmds = Finish(s)
	if _, ok := s.(Idle); !ok {
		t.Fatalf("state after finish = %T", s)
	}
	want = []Kind{RemoveExpanded, ShowTile, UnfreezePan, ResetVelocity}
	if got := Kinds(cmds); !reflect.DeepEqual(got, want) {
		t.Errorf("finish commands = %v, want %v", got, want)
	}
	if cmds[1].Cell != request().Cell {
		t.Errorf("ShowTile cell = %v", cmds[1].Cell)
	}
}

func TestCollapseAfterResizeFollowsCentre(t *testing.T) {
	cfg := DefaultConfig()
	s, _ := Expand(Idle{}, request(), vp, cfg)
	if got, want := s.(Expanded).Record.Origin, (canvas.Rect{X: -160, Y: -90, W: 120, H: 180}); got != want {
		t.Errorf("origin = %+v, want %+v relative to the centre", got, want)
	}

	s, _ = Resize(s, Viewport{W: 1600, H: 900}, cfg)
	_, cmds := Collapse(s, Viewport{W: 1600, H: 900}, cfg)
	want := canvas.Rect{X: 640, Y: 360, W: 120, H: 180}
	if back := cmds[3].Rect; back != want {
		t.Errorf("collapse after resize = %+v, want %+v", back, want)
	}
}

func TestMissingReferenceNoops(t *testing.T) {
	cfg := DefaultConfig()
	if s, cmds := Collapse(Idle{}, vp, cfg); len(cmds) != 0 || s != (Idle{}) {
		t.Errorf("collapse on idle: %T %v", s, Kinds(cmds))
	}
	if _, cmds := Finish(Idle{}); len(cmds) != 0 {
		t.Errorf("finish on idle: %v", Kinds(cmds))
	}
	s, _ := Expand(Idle{}, request(), vp, cfg)
	if _, cmds := Finish(s); len(cmds) != 0 {
		t.Errorf("finish before collapse: %v", Kinds(cmds))
	}
}

func TestResize(t *testing.T) {
	cfg := DefaultConfig()
	if _, cmds := Resize(Idle{}, vp, cfg); len(cmds) != 0 {
		t.Errorf("resize while idle emitted %v", Kinds(cmds))
	}

	s, _ := Expand(Idle{}, request(), vp, cfg)
	_, cmds := Resize(s, Viewport{W: 1600, H: 900}, cfg)
	if got := Kinds(cmds); !reflect.DeepEqual(got, []Kind{TweenExpanded}) {
		t.Fatalf("resize commands = %v", got)
	}
	want := canvas.Rect{X: 600, Y: 150, W: 400, H: 600}
	if cmds[0].Rect != want || cmds[0].Timing != cfg.Resize {
		t.Errorf("resize tween = %+v, want rect %+v", cmds[0], want)
	}

	s, _ = Collapse(s, vp, cfg)
	if _, cmds := Resize(s, vp, cfg); len(cmds) != 0 {
		t.Errorf("resize while closing emitted %v", Kinds(cmds))
	}
}

func TestMachineResolvesTitle(t *testing.T) {
	var asked []int
	m := NewMachine(DefaultConfig(), func(i int) string {
		asked = append(asked, i)
		return "Title"
	})
	req := request()
	req.Title = ""

	cmds := m.Expand(req, vp)
	if cmds[2].Title != "Title" || len(asked) != 1 || asked[0] != 5 {
		t.Errorf("title = %q, asked = %v", cmds[2].Title, asked)
	}
	if !m.Expanded() {
		t.Fatal("machine not expanded")
	}
	m.Expand(req, vp)
	if len(asked) != 1 {
		t.Error("title resolved for ignored expand")
	}

	rec, ok := m.Active()
	if !ok || rec.Title != "Title" {
		t.Errorf("Active = %+v, %v", rec, ok)
	}

	m.Collapse(vp)
	m.Finish()
	if m.Expanded() {
		t.Error("machine still expanded after finish")
	}
	if _, ok := m.State().(Idle); !ok {
		t.Errorf("state = %T", m.State())
	}
}
