// Package scenegraph resolves world transforms and semantic tags over the
// parent links stored in components.Node.
package scenegraph

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/cabinet/components"
	"github.com/automoto/cabinet/gamemath"
)

// maxDepth guards against accidental parent cycles.
const maxDepth = 64

// LocalMatrix returns the node's transform relative to its parent.
func LocalMatrix(n *components.NodeData) mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	if n.Rotation == (mgl64.Vec3{}) {
		return t
	}
	return t.Mul4(gamemath.EulerXYZ(n.Rotation))
}

// WorldMatrix composes local transforms from e up to the root.
func WorldMatrix(e *donburi.Entry) mgl64.Mat4 {
	m := mgl64.Ident4()
	for depth := 0; e != nil && e.Valid() && depth < maxDepth; depth++ {
		if !e.HasComponent(components.Node) {
			break
		}
		n := components.Node.Get(e)
		m = LocalMatrix(n).Mul4(m)
		e = n.Parent
	}
	return m
}

// WorldPosition returns the world-space origin of e.
func WorldPosition(e *donburi.Entry) mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, WorldMatrix(e))
}

// Parent returns the parent of e, or nil at the root.
func Parent(e *donburi.Entry) *donburi.Entry {
	if e == nil || !e.Valid() || !e.HasComponent(components.Node) {
		return nil
	}
	return components.Node.Get(e).Parent
}

// FindInteractive walks from e (inclusive) towards the root and returns the
// first entry carrying an Interactive component.
func FindInteractive(e *donburi.Entry) (*donburi.Entry, bool) {
	for depth := 0; e != nil && e.Valid() && depth < maxDepth; depth++ {
		if e.HasComponent(components.Interactive) {
			return e, true
		}
		e = Parent(e)
	}
	return nil, false
}

// Name returns the node name of e, or "" when it has none.
func Name(e *donburi.Entry) string {
	if e == nil || !e.Valid() {
		return ""
	}
	if e.HasComponent(components.Interactive) {
		return components.Interactive.Get(e).Name
	}
	if e.HasComponent(components.Node) {
		return components.Node.Get(e).Name
	}
	return ""
}

// Same reports whether a and b refer to the same entity.
func Same(a, b *donburi.Entry) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Entity() == b.Entity()
}
