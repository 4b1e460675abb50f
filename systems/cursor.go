package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/cabinet/components"
)

// UpdateCursor applies the shape requested by the controller.
func UpdateCursor(e *ecs.ECS) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}

	shape := ebiten.CursorShapeDefault
	if components.Cursor.Get(entry).Shape == components.CursorPointer {
		shape = ebiten.CursorShapePointer
	}
	if ebiten.CursorShape() != shape {
		ebiten.SetCursorShape(shape)
	}
}

// ResetCursor restores the default cursor when leaving a scene.
func ResetCursor() {
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}
