package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/interaction"
)

// PointerInput polls mouse and touch input once per update and forwards it
// to the subscribed handlers. It is the ebiten side of interaction.EventSource.
type PointerInput struct {
	handlers []interaction.PointerHandler
	touches  []ebiten.TouchID

	lastX, lastY int
	seen         bool
}

var _ interaction.EventSource = (*PointerInput)(nil)

func NewPointerInput() *PointerInput {
	return &PointerInput{}
}

func (p *PointerInput) Subscribe(h interaction.PointerHandler) {
	p.handlers = append(p.handlers, h)
}

// Update is an ecs.System.
func (p *PointerInput) Update(_ *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	if !p.seen || x != p.lastX || y != p.lastY {
		p.seen = true
		p.lastX, p.lastY = x, y
		p.dispatchMove(p.event(x, y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.dispatchClick(p.event(x, y))
	}

	// A tap is a move followed by a click at the touch point
	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		tx, ty := ebiten.TouchPosition(id)
		ev := p.event(tx, ty)
		p.dispatchMove(ev)
		p.dispatchClick(ev)
	}
}

func (p *PointerInput) event(x, y int) interaction.PointerEvent {
	return interaction.PointerEvent{
		X:      float64(x),
		Y:      float64(y),
		Width:  cfg.C.Width,
		Height: cfg.C.Height,
	}
}

func (p *PointerInput) dispatchMove(ev interaction.PointerEvent) {
	for _, h := range p.handlers {
		h.PointerMove(ev)
	}
}

func (p *PointerInput) dispatchClick(ev interaction.PointerEvent) {
	for _, h := range p.handlers {
		h.PointerClick(ev)
	}
}
