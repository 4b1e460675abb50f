package interaction

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/cabinet/gamemath"
)

// PointerEvent is a pointer position in device pixels together with the
// viewport it was measured in.
type PointerEvent struct {
	X, Y   float64
	Width  int
	Height int
}

// NDC returns the event position in normalized device coordinates.
func (e PointerEvent) NDC() mgl64.Vec2 {
	return gamemath.ScreenToNDC(e.X, e.Y, e.Width, e.Height)
}

// Aspect returns the viewport aspect ratio.
func (e PointerEvent) Aspect() float64 {
	if e.Height <= 0 {
		return 1
	}
	return float64(e.Width) / float64(e.Height)
}

// PointerHandler receives pointer input.
type PointerHandler interface {
	PointerMove(PointerEvent)
	PointerClick(PointerEvent)
}

// EventSource delivers pointer input to subscribed handlers. The host's
// input system implements it; tests use a stub.
type EventSource interface {
	Subscribe(PointerHandler)
}
