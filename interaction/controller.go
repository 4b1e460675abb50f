// Package interaction implements the drawer and camera state machine driven
// by pointer clicks and per-frame ticks.
package interaction

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/cabinet/archetypes"
	"github.com/automoto/cabinet/components"
	"github.com/automoto/cabinet/gamemath"
	"github.com/automoto/cabinet/picking"
	"github.com/automoto/cabinet/scenegraph"
	"github.com/automoto/cabinet/tween"
)

// Controller owns the open/close state machine and the camera flights.
// All methods must be called from the frame loop goroutine.
type Controller struct {
	world     donburi.World
	camera    *donburi.Entry
	cursor    *donburi.Entry
	picker    *picking.Picker
	scheduler *tween.Scheduler
	settings  Settings
	logger    *zap.Logger

	// active is the drawer that is open or opening, if any
	active *donburi.Entry
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithScheduler shares an existing scheduler instead of creating one.
func WithScheduler(s *tween.Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithSettings overrides the settings resolved from config.
func WithSettings(s Settings) Option {
	return func(c *Controller) { c.settings = s }
}

// NewController attaches a controller to the world's camera entry and
// subscribes it to src. The camera is reset to the overview pose.
func NewController(w donburi.World, camera *donburi.Entry, src EventSource, opts ...Option) (*Controller, error) {
	settings, err := SettingsFromConfig()
	if err != nil {
		return nil, err
	}
	c := &Controller{
		world:    w,
		camera:   camera,
		picker:   picking.NewPicker(w),
		settings: settings,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.scheduler == nil {
		c.scheduler = tween.NewScheduler(tween.WithLogger(c.logger))
	}

	if entry, ok := components.Cursor.First(w); ok {
		c.cursor = entry
	} else {
		c.cursor = archetypes.Cursor.Spawn(w)
	}

	cam := components.Camera.Get(camera)
	cam.Position = c.settings.OverviewPosition
	cam.LookAt = c.settings.OverviewLookAt
	cam.Mode = components.CameraOverview
	cam.Focus = nil

	if src != nil {
		src.Subscribe(c)
	}
	return c, nil
}

// Scheduler returns the scheduler driving the controller's tweens.
func (c *Controller) Scheduler() *tween.Scheduler { return c.scheduler }

// ActiveDrawer returns the drawer that is open or opening, or nil.
func (c *Controller) ActiveDrawer() *donburi.Entry { return c.active }

// CameraMode returns the current camera state.
func (c *Controller) CameraMode() components.CameraMode {
	return components.Camera.Get(c.camera).Mode
}

// PointerMove updates the hover state and cursor shape. It never changes
// drawer state.
func (c *Controller) PointerMove(ev PointerEvent) {
	cursor := components.Cursor.Get(c.cursor)
	hit, ok := c.picker.Pick(ev.NDC(), components.Camera.Get(c.camera), ev.Aspect())
	if !ok {
		cursor.Shape = components.CursorDefault
		cursor.Hovered = nil
		return
	}
	cursor.Shape = components.CursorPointer
	cursor.Hovered = hit.Object
}

// PointerClick resolves the nearest object under the pointer and acts on
// it. A click on untagged geometry does nothing.
func (c *Controller) PointerClick(ev PointerEvent) {
	hit, ok := c.picker.PickNearest(ev.NDC(), components.Camera.Get(c.camera), ev.Aspect())
	if !ok {
		return
	}

	switch hit.Role {
	case components.RoleDiamond:
		c.navigate(hit.Object)
	case components.RoleDrawer:
		if hit.Object.HasComponent(components.Drawer) {
			c.toggle(hit.Object)
		}
	}
}

// Tick advances every tween and spins the diamond.
func (c *Controller) Tick(dt time.Duration) {
	c.scheduler.Advance(dt)

	secs := dt.Seconds()
	components.Spin.Each(c.world, func(e *donburi.Entry) {
		node := components.Node.Get(e)
		node.Rotation = node.Rotation.Add(components.Spin.Get(e).Rate.Mul(secs))
	})
}

func (c *Controller) navigate(source *donburi.Entry) {
	name := scenegraph.Name(source)
	c.logger.Info("navigate", zap.String("target", c.settings.NavigationTarget), zap.String("source", name))
	components.NavigateEvent.Publish(c.world, components.NavigateEventData{
		Target: c.settings.NavigationTarget,
		Source: name,
	})
}

func (c *Controller) toggle(d *donburi.Entry) {
	drawer := components.Drawer.Get(d)

	if drawer.State.Moving() {
		c.logger.Debug("click ignored while drawer is moving",
			zap.String("drawer", scenegraph.Name(d)),
			zap.Stringer("state", drawer.State))
		return
	}

	switch drawer.State {
	case components.DrawerOpen:
		c.closeDrawer(d)
		c.flyToOverview()
		c.active = nil

	case components.DrawerClosed:
		if c.active != nil && !scenegraph.Same(c.active, d) {
			c.closeDrawer(c.active)
		}
		c.openDrawer(d)
		c.focus(d)
		c.active = d
	}
}

func (c *Controller) openDrawer(d *donburi.Entry) {
	drawer := components.Drawer.Get(d)
	node := components.Node.Get(d)
	name := scenegraph.Name(d)

	drawer.State = components.DrawerOpening
	c.logger.Debug("drawer opening", zap.String("drawer", name))

	c.scheduler.Start(&node.Position,
		drawer.RestPosition,
		drawer.RestPosition.Add(c.settings.DrawerOpenOffset),
		c.settings.DrawerDuration,
		c.settings.DrawerEasing,
		tween.OnComplete(func() {
			drawer.State = components.DrawerOpen
			drawer.IsOpen = true
			c.logger.Debug("drawer open", zap.String("drawer", name))
		}),
	)
}

// closeDrawer slides d back from wherever it currently is. A running open
// tween on d is superseded and never completes.
func (c *Controller) closeDrawer(d *donburi.Entry) {
	drawer := components.Drawer.Get(d)
	node := components.Node.Get(d)
	name := scenegraph.Name(d)

	drawer.State = components.DrawerClosing
	c.logger.Debug("drawer closing", zap.String("drawer", name))

	c.scheduler.Start(&node.Position,
		node.Position,
		drawer.RestPosition,
		c.settings.DrawerDuration,
		c.settings.DrawerEasing,
		tween.OnComplete(func() {
			drawer.State = components.DrawerClosed
			drawer.IsOpen = false
			c.logger.Debug("drawer closed", zap.String("drawer", name))
		}),
	)
}

func (c *Controller) focus(d *donburi.Entry) {
	cam := components.Camera.Get(c.camera)
	target := scenegraph.WorldPosition(d)

	cam.Mode = components.CameraFocused
	cam.Focus = d
	c.fly(cam, target.Add(c.settings.CameraFocusOffset), target)
}

func (c *Controller) flyToOverview() {
	cam := components.Camera.Get(c.camera)

	cam.Mode = components.CameraOverview
	cam.Focus = nil
	c.fly(cam, c.settings.OverviewPosition, c.settings.OverviewLookAt)
}

// fly tweens the camera position and its look-at point together. The
// look-at starts one unit ahead of the camera along its current heading.
func (c *Controller) fly(cam *components.CameraData, position, lookAt mgl64.Vec3) {
	from := gamemath.ForwardPoint(cam.Position, cam.LookAt)
	c.scheduler.Start(&cam.Position, cam.Position, position,
		c.settings.CameraDuration, c.settings.CameraEasing)
	c.scheduler.Start(&cam.LookAt, from, lookAt,
		c.settings.CameraDuration, c.settings.CameraEasing)
}
