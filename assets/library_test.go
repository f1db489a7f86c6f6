package assets

import (
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeTexture stands in for GPU upload in tests.
func fakeTexture(image.Image) *ebiten.Image { return nil }

func pollUntil(t *testing.T, l *Library, want int) int {
	t.Helper()
	got := 0
	deadline := time.Now().Add(2 * time.Second)
	for got < want && time.Now().Before(deadline) {
		got += l.Poll()
		time.Sleep(time.Millisecond)
	}
	return got
}

func TestRequestDeliversOnPoll(t *testing.T) {
	var mu sync.Mutex
	decoded := map[int]int{}
	l := NewLibrary(4, func(i int) (image.Image, error) {
		mu.Lock()
		decoded[i]++
		mu.Unlock()
		return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
	}, 2)
	l.convert = fakeTexture

	calls := 0
	for i := 0; i < 3; i++ {
		l.Request(1, func(*ebiten.Image) { calls++ })
	}
	if calls != 0 {
		t.Fatal("callback ran before Poll")
	}
	if got := pollUntil(t, l, 3); got != 3 {
		t.Fatalf("delivered %d callbacks, want 3", got)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending = %d after delivery", l.Pending())
	}

	mu.Lock()
	n := decoded[1]
	mu.Unlock()
	if n != 1 {
		t.Errorf("index decoded %d times, want 1", n)
	}

	// Cached images are delivered synchronously.
	l.Request(1, func(*ebiten.Image) { calls++ })
	if calls != 4 {
		t.Errorf("cached request not delivered immediately, calls=%d", calls)
	}
}

func TestFailedDecodeFallsBack(t *testing.T) {
	l := NewLibrary(2, func(int) (image.Image, error) {
		return nil, errors.New("corrupt")
	}, 1)
	var got image.Image
	l.convert = func(img image.Image) *ebiten.Image {
		got = img
		return nil
	}

	delivered := false
	l.Request(0, func(*ebiten.Image) { delivered = true })
	pollUntil(t, l, 1)
	if !delivered {
		t.Fatal("failed decode never delivered")
	}
	if got == nil || got.Bounds().Dx() == 0 {
		t.Error("placeholder not used for failed decode")
	}
}

func TestFilesOutOfRange(t *testing.T) {
	dec := Files([]string{"a.png"})
	if _, err := dec(3); err == nil {
		t.Error("out of range index decoded")
	}
	if _, err := dec(0); err == nil {
		t.Error("missing file decoded")
	}
}

func TestPlaceholderDistinctHues(t *testing.T) {
	a := Placeholder(0, 6, 8, 12)
	b := Placeholder(3, 6, 8, 12)
	if a.Bounds() != image.Rect(0, 0, 8, 12) {
		t.Fatalf("bounds = %v", a.Bounds())
	}
	if a.At(0, 0) == b.At(0, 0) {
		t.Error("different indices produced the same colour")
	}
}
