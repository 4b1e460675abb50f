package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// DrawerState is the per-drawer position in the open/close cycle.
type DrawerState int

const (
	DrawerClosed DrawerState = iota
	DrawerOpening
	DrawerOpen
	DrawerClosing
)

func (s DrawerState) String() string {
	switch s {
	case DrawerClosed:
		return "closed"
	case DrawerOpening:
		return "opening"
	case DrawerOpen:
		return "open"
	case DrawerClosing:
		return "closing"
	}
	return "unknown"
}

// Moving reports whether a tween currently owns the drawer's position.
func (s DrawerState) Moving() bool {
	return s == DrawerOpening || s == DrawerClosing
}

type DrawerData struct {
	RestPosition mgl64.Vec3 // closed position, relative to the cabinet body
	State        DrawerState
	IsOpen       bool // flips only when an open or close animation completes
}

var Drawer = donburi.NewComponentType[DrawerData]()
