// Package geometry tessellates scene meshes into world-space triangles and
// shades them for the software renderer.
package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/cabinet/components"
)

// Triangle is wound counter-clockwise when seen from the front.
type Triangle struct {
	A, B, C mgl64.Vec3
}

func (t Triangle) Normal() mgl64.Vec3 {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

func (t Triangle) Centroid() mgl64.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3)
}

// Transform applies m to every vertex.
func (t Triangle) Transform(m mgl64.Mat4) Triangle {
	return Triangle{
		A: mgl64.TransformCoordinate(t.A, m),
		B: mgl64.TransformCoordinate(t.B, m),
		C: mgl64.TransformCoordinate(t.C, m),
	}
}

// FacesAway reports whether the triangle's front side points away from eye.
func (t Triangle) FacesAway(eye mgl64.Vec3) bool {
	return t.Normal().Dot(eye.Sub(t.A)) <= 0
}

// boxFaces lists the corner indices of each face, counter-clockwise from
// outside. Corner i has bit 0 set for +X, bit 1 for +Y and bit 2 for +Z.
var boxFaces = [6][4]int{
	{1, 3, 7, 5}, // +X
	{0, 4, 6, 2}, // -X
	{2, 6, 7, 3}, // +Y
	{0, 1, 5, 4}, // -Y
	{4, 5, 7, 6}, // +Z
	{0, 2, 3, 1}, // -Z
}

// Box returns the 12 triangles of an axis-aligned box centred on the origin.
func Box(size mgl64.Vec3) []Triangle {
	h := size.Mul(0.5)
	var corners [8]mgl64.Vec3
	for i := range corners {
		corners[i] = mgl64.Vec3{-h[0], -h[1], -h[2]}
		if i&1 != 0 {
			corners[i][0] = h[0]
		}
		if i&2 != 0 {
			corners[i][1] = h[1]
		}
		if i&4 != 0 {
			corners[i][2] = h[2]
		}
	}

	tris := make([]Triangle, 0, 12)
	for _, f := range boxFaces {
		a, b, c, d := corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]
		tris = append(tris, Triangle{a, b, c}, Triangle{a, c, d})
	}
	return tris
}

// Gem returns an octahedron inscribed in a box of the given size.
func Gem(size mgl64.Vec3) []Triangle {
	h := size.Mul(0.5)
	top := mgl64.Vec3{0, h[1], 0}
	bottom := mgl64.Vec3{0, -h[1], 0}
	ring := [4]mgl64.Vec3{
		{h[0], 0, 0},
		{0, 0, -h[2]},
		{-h[0], 0, 0},
		{0, 0, h[2]},
	}

	tris := make([]Triangle, 0, 8)
	for i := range ring {
		a, b := ring[i], ring[(i+1)%len(ring)]
		tris = append(tris, Triangle{a, b, top}, Triangle{b, a, bottom})
	}
	return tris
}

// Tessellate returns the local-space triangles of a mesh.
func Tessellate(m *components.MeshData) []Triangle {
	switch m.Shape {
	case components.ShapeGem:
		return Gem(m.Size)
	default:
		return Box(m.Size)
	}
}
