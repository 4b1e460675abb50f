package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestIntersectAABB(t *testing.T) {
	box := BoxOfSize(mgl64.Vec3{2, 2, 2})

	tHit, ok := IntersectAABB(Ray{Origin: mgl64.Vec3{0, 0, 5}, Dir: mgl64.Vec3{0, 0, -1}}, box)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, tHit, 1e-9)

	// Pointing away
	_, ok = IntersectAABB(Ray{Origin: mgl64.Vec3{0, 0, 5}, Dir: mgl64.Vec3{0, 0, 1}}, box)
	assert.False(t, ok)

	// Parallel to a slab and outside it
	_, ok = IntersectAABB(Ray{Origin: mgl64.Vec3{0, 3, 5}, Dir: mgl64.Vec3{0, 0, -1}}, box)
	assert.False(t, ok)

	// Starting inside
	tHit, ok = IntersectAABB(Ray{Origin: mgl64.Vec3{0, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}}, box)
	assert.True(t, ok)
	assert.Equal(t, 0.0, tHit)
}

func TestRayTransformKeepsParameter(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 0, 10}, Dir: mgl64.Vec3{0, 0, -1}}
	world := mgl64.Translate3D(0, 0, 3)

	local := r.Transform(world.Inv())
	tHit, ok := IntersectAABB(local, BoxOfSize(mgl64.Vec3{1, 1, 1}))
	assert.True(t, ok)
	assert.InDelta(t, 6.5, tHit, 1e-9)
	assert.True(t, r.At(tHit).ApproxEqualThreshold(mgl64.Vec3{0, 0, 3.5}, 1e-9))
}

func TestCorners(t *testing.T) {
	c := BoxOfSize(mgl64.Vec3{2, 4, 6}).Corners()
	assert.Equal(t, mgl64.Vec3{-1, -2, -3}, c[0])
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, c[6])
}
