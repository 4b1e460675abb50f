package tween

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestTweenReachesExactEnd(t *testing.T) {
	s := NewScheduler()
	var v mgl64.Vec3
	completed := 0

	h := s.Start(&v, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.1, 0.2, 0.3}, time.Second, ease.OutCubic,
		OnComplete(func() { completed++ }))
	assert.Equal(t, 1, s.Active())
	assert.True(t, s.Busy(&v))

	for i := 0; i < 59; i++ {
		s.Advance(time.Second / 60)
	}
	assert.False(t, h.Done())
	assert.Equal(t, 0, completed)

	s.Advance(time.Second / 30)
	assert.True(t, h.Done())
	assert.False(t, h.Superseded())
	assert.Equal(t, mgl64.Vec3{0.1, 0.2, 0.3}, v)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, s.Active())
	assert.False(t, s.Busy(&v))

	// Further frames never re-run completion
	s.Advance(time.Second)
	assert.Equal(t, 1, completed)
}

func TestTweenFollowsEasing(t *testing.T) {
	s := NewScheduler()
	var lin, cubic mgl64.Vec3
	s.Start(&lin, mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}, time.Second, ease.Linear)
	s.Start(&cubic, mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}, time.Second, ease.OutCubic)

	s.Advance(500 * time.Millisecond)
	assert.InDelta(t, 5.0, lin.X(), 1e-4)
	// 1 - (1-0.5)^3
	assert.InDelta(t, 8.75, cubic.X(), 1e-4)
}

func TestVariableFrameRateIsTimeBased(t *testing.T) {
	s := NewScheduler()
	var a, b mgl64.Vec3
	s.Start(&a, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, time.Second, ease.OutQuad)
	s.Start(&b, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, time.Second, ease.OutQuad)

	s.Advance(300 * time.Millisecond)
	s.Advance(100 * time.Millisecond)

	c := mgl64.Vec3{}
	other := NewScheduler()
	other.Start(&c, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, time.Second, ease.OutQuad)
	other.Advance(400 * time.Millisecond)

	assert.InDelta(t, c.X(), a.X(), 1e-6)
	assert.Equal(t, a, b)
}

func TestStartSupersedesSameTarget(t *testing.T) {
	s := NewScheduler()
	var v mgl64.Vec3
	firstDone, secondDone := 0, 0

	first := s.Start(&v, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, time.Second, ease.Linear,
		OnComplete(func() { firstDone++ }))
	s.Advance(500 * time.Millisecond)

	second := s.Start(&v, v, mgl64.Vec3{-1, 0, 0}, time.Second, ease.Linear,
		OnComplete(func() { secondDone++ }))
	assert.True(t, first.Done())
	assert.True(t, first.Superseded())
	assert.Equal(t, 1, s.Active())

	s.Advance(2 * time.Second)
	assert.True(t, second.Done())
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, v)
	assert.Equal(t, 0, firstDone)
	assert.Equal(t, 1, secondDone)
}

func TestIndependentTargetsRunConcurrently(t *testing.T) {
	s := NewScheduler()
	var pos, look mgl64.Vec3
	updates := 0
	s.Start(&pos, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, 1500*time.Millisecond, ease.OutQuad)
	s.Start(&look, mgl64.Vec3{}, mgl64.Vec3{2, 2, 2}, 1500*time.Millisecond, ease.OutQuad,
		OnUpdate(func() { updates++ }))

	assert.Equal(t, 2, s.Active())
	// 90 frames of 1/60s fall a few nanoseconds short of 1.5s
	for i := 0; i < 91; i++ {
		s.Advance(time.Second / 60)
	}
	assert.Equal(t, 0, s.Active())
	assert.True(t, pos.ApproxEqualThreshold(mgl64.Vec3{1, 1, 1}, 1e-12))
	assert.True(t, look.ApproxEqualThreshold(mgl64.Vec3{2, 2, 2}, 1e-12))
	assert.Equal(t, 91, updates)
}

func TestCallbackStartsTweenNextFrame(t *testing.T) {
	s := NewScheduler()
	var v mgl64.Vec3
	var chained *Handle

	s.Start(&v, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 100*time.Millisecond, ease.Linear,
		OnComplete(func() {
			chained = s.Start(&v, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 0}, 100*time.Millisecond, ease.Linear)
		}))

	s.Advance(200 * time.Millisecond)
	require.NotNil(t, chained)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, v)
	assert.Equal(t, 1, s.Active())
	assert.True(t, s.Busy(&v))

	s.Advance(200 * time.Millisecond)
	assert.True(t, chained.Done())
	assert.Equal(t, mgl64.Vec3{2, 0, 0}, v)
}

func TestZeroDurationCompletesOnFirstAdvance(t *testing.T) {
	s := NewScheduler()
	var v mgl64.Vec3
	done := false
	s.Start(&v, mgl64.Vec3{}, mgl64.Vec3{3, 2, 1}, 0, nil, OnComplete(func() { done = true }))

	assert.Equal(t, mgl64.Vec3{}, v)
	s.Advance(0)
	assert.True(t, done)
	assert.Equal(t, mgl64.Vec3{3, 2, 1}, v)
}

func TestEasingByName(t *testing.T) {
	fn, err := EasingByName("out-cubic")
	require.NoError(t, err)
	assert.InDelta(t, 0.875, float64(fn(0.5, 0, 1, 1)), 1e-6)

	_, err = EasingByName("bounce-sideways")
	assert.Error(t, err)
}
