package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line starting at Origin. Dir is not required to be unit length;
// distances returned by intersection tests are in units of Dir.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Transform maps the ray through m. Dir is transformed as a vector so the
// parameter t of a hit is preserved.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	return Ray{
		Origin: mgl64.TransformCoordinate(r.Origin, m),
		Dir:    mgl64.TransformNormal(r.Dir, m),
	}
}

// AABB is an axis-aligned box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxOfSize returns a box of the given full extents centred on the origin.
func BoxOfSize(size mgl64.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{Min: half.Mul(-1), Max: half}
}

// Corners returns the eight corners of the box.
func (b AABB) Corners() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
	}
}

// IntersectAABB returns the nearest non-negative ray parameter at which r
// enters b (slab method). A ray starting inside the box hits at t = 0.
func IntersectAABB(r Ray, b AABB) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(r.Dir[i]) < 1e-12 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[i]
		t1 := (b.Min[i] - r.Origin[i]) * inv
		t2 := (b.Max[i] - r.Origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
