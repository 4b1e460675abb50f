package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Shape selects how a mesh is drawn. Picking always uses the bounding box.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeGem       // octahedron inscribed in the box
)

type MeshData struct {
	Shape Shape
	Size  mgl64.Vec3 // full extents, centred on the node origin
	Color color.RGBA
}

var Mesh = donburi.NewComponentType[MeshData]()
