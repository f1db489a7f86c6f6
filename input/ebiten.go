package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads the mouse, or the first touch when one is active.
type EbitenSource struct {
	touch    ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
	lastX    float64
	lastY    float64
}

func (s *EbitenSource) Poll() Snapshot {
	snap := Snapshot{
		Escape:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Debug:      inpututil.IsKeyJustPressed(ebiten.KeyF3),
		Screenshot: inpututil.IsKeyJustPressed(ebiten.KeyF12),
	}

	if s.touching {
		if inpututil.IsTouchJustReleased(s.touch) {
			s.touching = false
			snap.X, snap.Y = s.lastX, s.lastY
			return snap
		}
		x, y := ebiten.TouchPosition(s.touch)
		s.lastX, s.lastY = float64(x), float64(y)
		snap.X, snap.Y, snap.Down = s.lastX, s.lastY, true
		return snap
	}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		s.touch = s.touchIDs[0]
		s.touching = true
		x, y := ebiten.TouchPosition(s.touch)
		s.lastX, s.lastY = float64(x), float64(y)
		snap.X, snap.Y, snap.Down = s.lastX, s.lastY, true
		return snap
	}

	mx, my := ebiten.CursorPosition()
	snap.X, snap.Y = float64(mx), float64(my)
	snap.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return snap
}
