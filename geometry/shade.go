package geometry

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Light is a two-light directional rig plus ambient.
type Light struct {
	Key, Fill                 mgl64.Vec3 // directions the light travels
	Ambient, KeyGain, FillGain float64
}

// Intensity returns the light reaching a surface with normal n.
func (l Light) Intensity(n mgl64.Vec3) float64 {
	return l.Ambient +
		l.KeyGain*lambert(n, l.Key) +
		l.FillGain*lambert(n, l.Fill)
}

func lambert(n, dir mgl64.Vec3) float64 {
	if dir.Len() == 0 {
		return 0
	}
	return math.Max(0, n.Dot(dir.Normalize().Mul(-1)))
}

// Shade scales base by intensity and adds tint towards white.
func Shade(base color.RGBA, intensity, tint float64) color.RGBA {
	ch := func(v uint8) uint8 {
		f := float64(v)*intensity + (255-float64(v)*intensity)*tint
		return uint8(math.Round(math.Max(0, math.Min(255, f))))
	}
	return color.RGBA{R: ch(base.R), G: ch(base.G), B: ch(base.B), A: base.A}
}
