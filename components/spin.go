package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// SpinData rotates a node continuously, independent of any interaction.
type SpinData struct {
	Rate mgl64.Vec3 // radians per second about X, Y, Z
}

var Spin = donburi.NewComponentType[SpinData]()
