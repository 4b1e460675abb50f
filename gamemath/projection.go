package gamemath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ScreenToNDC maps a pixel coordinate to normalized device coordinates with
// the origin at the viewport centre and +Y up.
func ScreenToNDC(x, y float64, width, height int) mgl64.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{
		x/float64(width)*2 - 1,
		-(y/float64(height))*2 + 1,
	}
}

// NDCToScreen is the inverse of ScreenToNDC.
func NDCToScreen(ndc mgl64.Vec2, width, height int) (x, y float64) {
	x = (ndc[0] + 1) / 2 * float64(width)
	y = (1 - ndc[1]) / 2 * float64(height)
	return x, y
}

// RayFromNDC unprojects an NDC point through the inverse view-projection
// matrix into a world-space ray from the near plane towards the far plane.
func RayFromNDC(ndc mgl64.Vec2, view, projection mgl64.Mat4) Ray {
	inv := projection.Mul4(view).Inv()
	near := mgl64.TransformCoordinate(mgl64.Vec3{ndc[0], ndc[1], -1}, inv)
	far := mgl64.TransformCoordinate(mgl64.Vec3{ndc[0], ndc[1], 1}, inv)
	return Ray{Origin: near, Dir: far.Sub(near).Normalize()}
}

// Project maps a world point to pixel coordinates. ok is false when the
// point is behind the camera.
func Project(p mgl64.Vec3, viewProjection mgl64.Mat4, width, height int) (x, y, depth float64, ok bool) {
	clip := viewProjection.Mul4x1(p.Vec4(1))
	if clip[3] <= 1e-9 {
		return 0, 0, 0, false
	}
	ndc := mgl64.Vec2{clip[0] / clip[3], clip[1] / clip[3]}
	x, y = NDCToScreen(ndc, width, height)
	return x, y, clip[3], true
}

// ForwardPoint returns the point one unit in front of eye, looking at target.
func ForwardPoint(eye, target mgl64.Vec3) mgl64.Vec3 {
	dir := target.Sub(eye)
	if dir.Len() < 1e-12 {
		return eye.Add(mgl64.Vec3{0, 0, -1})
	}
	return eye.Add(dir.Normalize())
}

// Lerp interpolates between a and b by t.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// EulerXYZ builds a rotation matrix applying X, then Y, then Z in the
// object's local frame (Rx * Ry * Rz).
func EulerXYZ(r mgl64.Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(r[0]).Mul4(mgl64.HomogRotate3DY(r[1])).Mul4(mgl64.HomogRotate3DZ(r[2]))
}
