// Package tween drives time-based interpolation of 3D vectors. Each tween
// owns a pointer to the value it animates; progress comes from a gween
// tween running from 0 to 1, so any gween easing curve can shape it.
package tween

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/automoto/cabinet/gamemath"
)

// Tween animates one target from a start to an end value.
type Tween struct {
	target   *mgl64.Vec3
	from, to mgl64.Vec3
	duration time.Duration
	elapsed  time.Duration
	progress *gween.Tween

	onUpdate   func()
	onComplete func()

	done       bool
	superseded bool
}

// Handle is returned to callers that start a tween. There is no way to
// cancel through it; starting another tween on the same target supersedes.
type Handle struct {
	t *Tween
}

// Done reports whether the tween has retired, either by finishing or by
// being superseded.
func (h *Handle) Done() bool { return h.t.done }

// Superseded reports whether a newer tween on the same target replaced this one.
func (h *Handle) Superseded() bool { return h.t.superseded }

// Option configures a tween at Start.
type Option func(*Tween)

// OnUpdate runs after every write to the target, including the final one.
func OnUpdate(fn func()) Option {
	return func(t *Tween) { t.onUpdate = fn }
}

// OnComplete runs once after the target reaches its end value. It does not
// run for a superseded tween.
func OnComplete(fn func()) Option {
	return func(t *Tween) { t.onComplete = fn }
}

// Scheduler owns the live tweens. It must only be used from the goroutine
// that runs the frame loop.
type Scheduler struct {
	active   []*Tween
	byTarget map[*mgl64.Vec3]*Tween
	logger   *zap.Logger
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the logger used for supersession diagnostics.
func WithLogger(l *zap.Logger) SchedulerOption {
	return func(s *Scheduler) { s.logger = l }
}

// NewScheduler creates an empty scheduler.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		byTarget: make(map[*mgl64.Vec3]*Tween),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins animating target from `from` to `to` over d. The target is
// not written until the next Advance. A live tween already driving target is
// retired without completing.
func (s *Scheduler) Start(target *mgl64.Vec3, from, to mgl64.Vec3, d time.Duration, easing ease.TweenFunc, opts ...Option) *Handle {
	if easing == nil {
		easing = ease.Linear
	}
	t := &Tween{
		target:   target,
		from:     from,
		to:       to,
		duration: d,
		progress: gween.New(0, 1, float32(d.Seconds()), easing),
	}
	for _, opt := range opts {
		opt(t)
	}

	if prev, ok := s.byTarget[target]; ok && !prev.done {
		prev.done = true
		prev.superseded = true
		s.logger.Debug("tween superseded",
			zap.Duration("elapsed", prev.elapsed),
			zap.Duration("duration", prev.duration))
	}
	s.byTarget[target] = t
	s.active = append(s.active, t)
	return &Handle{t: t}
}

// Advance moves every live tween forward by dt, in start order. Tweens
// started from callbacks during Advance first run on the next call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	snapshot := append([]*Tween(nil), s.active...)
	for _, t := range snapshot {
		if t.done {
			continue
		}
		t.step(dt)
		if t.done && s.byTarget[t.target] == t {
			delete(s.byTarget, t.target)
		}
	}
	s.compact()
}

func (t *Tween) step(dt time.Duration) {
	t.elapsed += dt
	eased, finished := t.progress.Set(float32(t.elapsed.Seconds()))
	if finished || t.elapsed >= t.duration {
		*t.target = t.to
		t.done = true
	} else {
		*t.target = gamemath.Lerp(t.from, t.to, float64(eased))
	}
	if t.onUpdate != nil {
		t.onUpdate()
	}
	if t.done && t.onComplete != nil {
		t.onComplete()
	}
}

func (s *Scheduler) compact() {
	live := s.active[:0]
	for _, t := range s.active {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = live
	for target, t := range s.byTarget {
		if t.done {
			delete(s.byTarget, target)
		}
	}
}

// Active returns the number of live tweens.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.active {
		if !t.done {
			n++
		}
	}
	return n
}

// Busy reports whether target has a live tween.
func (s *Scheduler) Busy(target *mgl64.Vec3) bool {
	t, ok := s.byTarget[target]
	return ok && !t.done
}
