package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraMode is the controller's camera state.
type CameraMode int

const (
	CameraOverview CameraMode = iota
	CameraFocused
)

func (m CameraMode) String() string {
	if m == CameraFocused {
		return "focused"
	}
	return "overview"
}

// CameraData is a perspective camera. Orientation is never stored: it is
// always derived from Position and LookAt.
type CameraData struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	Up       mgl64.Vec3

	FOV  float64 // vertical, degrees
	Near float64
	Far  float64

	Mode  CameraMode
	Focus *donburi.Entry // drawer in focus when Mode is CameraFocused
}

// View returns the world-to-camera matrix.
func (c *CameraData) View() mgl64.Mat4 {
	up := c.Up
	if up.Len() == 0 {
		up = mgl64.Vec3{0, 1, 0}
	}
	return mgl64.LookAtV(c.Position, c.LookAt, up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *CameraData) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection(aspect) * View().
func (c *CameraData) ViewProjection(aspect float64) mgl64.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

var Camera = donburi.NewComponentType[CameraData]()
