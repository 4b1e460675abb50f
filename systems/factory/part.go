package factory

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/cabinet/archetypes"
	"github.com/automoto/cabinet/components"
)

// part spawns a visible box under parent.
func part(w donburi.World, name string, parent *donburi.Entry, pos, size mgl64.Vec3, c color.RGBA, extra ...donburi.IComponentType) *donburi.Entry {
	e := archetypes.Part.Spawn(w, extra...)
	components.Node.SetValue(e, components.NodeData{Name: name, Parent: parent, Position: pos})
	components.Mesh.SetValue(e, components.MeshData{Shape: components.ShapeBox, Size: size, Color: c})
	return e
}

func group(w donburi.World, name string, parent *donburi.Entry, pos mgl64.Vec3, extra ...donburi.IComponentType) *donburi.Entry {
	e := archetypes.Group.Spawn(w, extra...)
	components.Node.SetValue(e, components.NodeData{Name: name, Parent: parent, Position: pos})
	return e
}

func rotate(e *donburi.Entry, r mgl64.Vec3) *donburi.Entry {
	components.Node.Get(e).Rotation = r
	return e
}
