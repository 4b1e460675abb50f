package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NodeData places an entity in the scene graph. Parent is a back-reference
// used for world transforms and tag lookup; it does not own the parent.
type NodeData struct {
	Name     string
	Parent   *donburi.Entry
	Position mgl64.Vec3 // relative to Parent
	Rotation mgl64.Vec3 // Euler angles in radians, applied X then Y then Z
}

var Node = donburi.NewComponentType[NodeData]()
