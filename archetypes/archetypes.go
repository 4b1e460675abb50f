package archetypes

import (
	"github.com/automoto/cabinet/components"
	"github.com/automoto/cabinet/tags"
	"github.com/yohamta/donburi"
)

var (
	// Group is a transform-only node.
	Group = newArchetype(
		components.Node,
	)
	Root = newArchetype(
		tags.Root,
		components.Node,
	)
	Part = newArchetype(
		components.Node,
		components.Mesh,
	)
	Drawer = newArchetype(
		tags.Drawer,
		components.Node,
		components.Interactive,
		components.Drawer,
	)
	Diamond = newArchetype(
		tags.Diamond,
		components.Node,
		components.Mesh,
		components.Interactive,
		components.Spin,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	return w.Entry(w.Create(all...))
}
