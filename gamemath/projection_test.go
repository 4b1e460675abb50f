package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestScreenToNDC(t *testing.T) {
	assert.Equal(t, mgl64.Vec2{0, 0}, ScreenToNDC(400, 300, 800, 600))
	assert.Equal(t, mgl64.Vec2{-1, 1}, ScreenToNDC(0, 0, 800, 600))
	assert.Equal(t, mgl64.Vec2{1, -1}, ScreenToNDC(800, 600, 800, 600))
	assert.Equal(t, mgl64.Vec2{}, ScreenToNDC(10, 10, 0, 0))

	x, y := NDCToScreen(mgl64.Vec2{0.5, -0.5}, 800, 600)
	assert.InDelta(t, 600.0, x, 1e-9)
	assert.InDelta(t, 450.0, y, 1e-9)
}

func TestRayFromNDCMatchesProject(t *testing.T) {
	eye := mgl64.Vec3{1.5, 1.2, 5.5}
	view := mgl64.LookAtV(eye, mgl64.Vec3{0, 1.2, 0}, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(mgl64.DegToRad(45), 16.0/9.0, 0.1, 1000)

	target := mgl64.Vec3{-0.3, 2.0, 0.4}
	x, y, _, ok := Project(target, proj.Mul4(view), 1280, 720)
	assert.True(t, ok)

	ray := RayFromNDC(ScreenToNDC(x, y, 1280, 720), view, proj)
	toTarget := target.Sub(ray.Origin).Normalize()
	assert.InDelta(t, 1.0, ray.Dir.Dot(toTarget), 1e-9)
	assert.InDelta(t, 1.0, ray.Dir.Len(), 1e-9)
}

func TestProjectBehindCamera(t *testing.T) {
	view := mgl64.LookAtV(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(mgl64.DegToRad(45), 1, 0.1, 100)
	_, _, _, ok := Project(mgl64.Vec3{0, 0, 10}, proj.Mul4(view), 100, 100)
	assert.False(t, ok)
}

func TestForwardPoint(t *testing.T) {
	p := ForwardPoint(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -5})
	assert.True(t, p.ApproxEqualThreshold(mgl64.Vec3{0, 0, 4}, 1e-12))

	p = ForwardPoint(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1})
	assert.Equal(t, mgl64.Vec3{1, 1, 0}, p)
}

func TestEulerXYZ(t *testing.T) {
	m := EulerXYZ(mgl64.Vec3{0, math.Pi / 2, 0})
	v := mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, m)
	assert.InDelta(t, 0, v.X(), 1e-9)
	assert.InDelta(t, 0, v.Y(), 1e-9)
	assert.InDelta(t, -1, v.Z(), 1e-9)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, Lerp(mgl64.Vec3{}, mgl64.Vec3{2, 4, 6}, 0.5))
}
