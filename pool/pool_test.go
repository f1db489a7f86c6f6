package pool

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"poster-wall/canvas"
)

// deferredLoader holds requests until flush, like an image still decoding.
type deferredLoader struct {
	pending []func(*ebiten.Image)
	indices []int
}

func (l *deferredLoader) Request(index int, done func(*ebiten.Image)) {
	l.indices = append(l.indices, index)
	l.pending = append(l.pending, done)
}

func (l *deferredLoader) flush() {
	for _, fn := range l.pending {
		fn(nil)
	}
	l.pending = nil
}

func testLayout() canvas.Layout {
	return canvas.Layout{ItemWidth: 120, ItemHeight: 180, ItemGap: 150, Overscan: 2}
}

func TestEnsureVisibleIdempotent(t *testing.T) {
	loader := &deferredLoader{}
	p := New(testLayout(), 5, loader, nil)
	cells := canvas.Range{StartCol: -2, EndCol: 2, StartRow: -1, EndRow: 1}.Cells()

	if n := p.EnsureVisible(cells); n != 15 {
		t.Fatalf("first pass created %d tiles, want 15", n)
	}
	if n := p.EnsureVisible(cells); n != 0 {
		t.Errorf("second pass created %d tiles, want 0", n)
	}
	if p.Len() != 15 || len(loader.indices) != 15 {
		t.Errorf("Len = %d, loader requests = %d, want 15", p.Len(), len(loader.indices))
	}
}

func TestEnsureVisiblePositionsAndContent(t *testing.T) {
	p := New(testLayout(), 4, nil, nil)
	p.EnsureVisible([]canvas.Cell{{Col: 2, Row: 3}, {Col: -2, Row: -3}})

	tile, ok := p.Get(canvas.Cell{Col: 2, Row: 3})
	if !ok {
		t.Fatal("tile 2,3 missing")
	}
	if tile.X != 540 || tile.Y != 990 {
		t.Errorf("position = (%v,%v), want (540,990)", tile.X, tile.Y)
	}
	if tile.ID() != "2,3" {
		t.Errorf("ID = %q", tile.ID())
	}
	mirror, _ := p.Get(canvas.Cell{Col: -2, Row: -3})
	if tile.ContentIndex != 1 || mirror.ContentIndex != 1 {
		t.Errorf("content indices = %d, %d, want 1", tile.ContentIndex, mirror.ContentIndex)
	}
	if !tile.Visible || tile.Alpha != 1 {
		t.Errorf("new tile visible=%v alpha=%v", tile.Visible, tile.Alpha)
	}
}

func TestTilesWaitForLoad(t *testing.T) {
	loader := &deferredLoader{}
	p := New(testLayout(), 3, loader, nil)
	p.EnsureVisible([]canvas.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}})

	p.Each(func(tile *Tile) {
		if tile.Ready {
			t.Errorf("tile %s ready before load", tile.ID())
		}
	})
	loader.flush()
	p.Each(func(tile *Tile) {
		if !tile.Ready {
			t.Errorf("tile %s not ready after load", tile.ID())
		}
	})
}

func TestHideShow(t *testing.T) {
	p := New(testLayout(), 3, nil, nil)
	c := canvas.Cell{Col: 1, Row: 1}
	p.EnsureVisible([]canvas.Cell{c})

	p.Hide(c)
	if tile, _ := p.Get(c); tile.Visible {
		t.Error("tile visible after Hide")
	}
	if _, ok := p.TileAt(270+10, 330+10); ok {
		t.Error("hidden tile still hit-testable")
	}
	p.Show(c)
	if tile, _ := p.Get(c); !tile.Visible {
		t.Error("tile hidden after Show")
	}
	if p.Len() != 1 {
		t.Errorf("Len = %d after hide/show, want 1", p.Len())
	}

	// Unknown cells are ignored.
	p.Hide(canvas.Cell{Col: 99, Row: 99})
	p.Show(canvas.Cell{Col: 99, Row: 99})
}

func TestTileAtAndClick(t *testing.T) {
	var clicked []string
	p := New(testLayout(), 3, nil, func(tile *Tile) { clicked = append(clicked, tile.ID()) })
	p.EnsureVisible([]canvas.Cell{{Col: 0, Row: 0}})

	tile, ok := p.TileAt(60, 90)
	if !ok || tile.ID() != "0,0" {
		t.Fatalf("TileAt(60,90) = %v, %v", tile, ok)
	}
	if _, ok := p.TileAt(200, 90); ok {
		t.Error("gap point hit a tile")
	}
	if _, ok := p.TileAt(300, 90); ok {
		t.Error("unmaterialised cell hit a tile")
	}

	p.Click(tile.Cell)
	p.Click(canvas.Cell{Col: 5, Row: 5})
	if len(clicked) != 1 || clicked[0] != "0,0" {
		t.Errorf("clicks = %v", clicked)
	}
}

func TestEachCreationOrder(t *testing.T) {
	p := New(testLayout(), 3, nil, nil)
	p.EnsureVisible([]canvas.Cell{{Col: 3, Row: 0}, {Col: -1, Row: 0}})
	p.EnsureVisible([]canvas.Cell{{Col: 0, Row: 0}, {Col: 3, Row: 0}})

	var ids []string
	p.Each(func(tile *Tile) { ids = append(ids, tile.ID()) })
	want := []string{"3,0", "-1,0", "0,0"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %s, want %s", i, ids[i], want[i])
		}
	}
}
