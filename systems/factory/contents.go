package factory

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"github.com/automoto/cabinet/archetypes"
	"github.com/automoto/cabinet/components"
	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/tags"
)

var (
	parchment = color.RGBA{R: 0xff, G: 0xff, B: 0xee, A: 255}
	ruby      = color.RGBA{R: 0xff, G: 0x10, B: 0x10, A: 255}
	carRed    = color.RGBA{R: 0xd9, G: 0x04, B: 0x29, A: 255}
	glass     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}
	tyre      = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 255}
	headlight = color.RGBA{R: 0xff, G: 0xff, B: 0xcc, A: 255}
)

func createDiamond(w donburi.World, drawer *donburi.Entry, b drawerBox) *donburi.Entry {
	size := cfg.Diamond.Size

	d := archetypes.Diamond.Spawn(w)
	components.Node.SetValue(d, components.NodeData{
		Name:     "diamond",
		Parent:   drawer,
		Position: mgl64.Vec3{0, -b.h/2 + size, 0},
	})
	components.Mesh.SetValue(d, components.MeshData{
		Shape: components.ShapeGem,
		Size:  mgl64.Vec3{2 * size, 2 * size, 2 * size},
		Color: cfg.Diamond.Color,
	})
	components.Interactive.SetValue(d, components.InteractiveData{
		ID:   uuid.NewString(),
		Name: "diamond",
		Role: components.RoleDiamond,
	})
	components.Spin.SetValue(d, components.SpinData{Rate: cfg.Diamond.SpinRate})
	return d
}

func createToyCar(w donburi.World, drawer *donburi.Entry, b drawerBox) {
	car := rotate(group(w, "toy_car", drawer, mgl64.Vec3{0, -b.h / 2, 0}, tags.Contents),
		mgl64.Vec3{0, math.Pi / 8, 0})

	part(w, "car_body", car, mgl64.Vec3{0, 0.025, 0}, mgl64.Vec3{0.12, 0.03, 0.06}, carRed)
	part(w, "car_cabin", car, mgl64.Vec3{-0.01, 0.05, 0}, mgl64.Vec3{0.05, 0.025, 0.045}, glass)

	for _, p := range []mgl64.Vec3{
		{-0.04, 0.018, 0.03},
		{0.04, 0.018, 0.03},
		{-0.04, 0.018, -0.03},
		{0.04, 0.018, -0.03},
	} {
		part(w, "car_wheel", car, p, mgl64.Vec3{0.036, 0.036, 0.015}, tyre)
	}

	part(w, "car_headlight", car, mgl64.Vec3{0.06, 0.03, 0.02}, mgl64.Vec3{0.01, 0.01, 0.01}, headlight)
	part(w, "car_headlight", car, mgl64.Vec3{0.06, 0.03, -0.02}, mgl64.Vec3{0.01, 0.01, 0.01}, headlight)
}

// createFiller puts a book, a scroll or an orb in the drawer.
func createFiller(w donburi.World, drawer *donburi.Entry, b drawerBox, rng *rand.Rand) {
	switch roll := rng.Float64(); {
	case roll < 0.4:
		cover := color.RGBA{R: uint8(rng.IntN(256)), G: uint8(rng.IntN(256)), B: uint8(rng.IntN(256)), A: 255}
		book := part(w, "book", drawer,
			mgl64.Vec3{0, -b.h/2 + 0.04, -0.02},
			mgl64.Vec3{b.w * 0.5, 0.04, b.d * 0.6},
			cover, tags.Contents)
		rotate(book, mgl64.Vec3{0, (rng.Float64() - 0.5) * 0.3, 0})

	case roll < 0.7:
		scroll := part(w, "scroll", drawer,
			mgl64.Vec3{0, -b.h/2 + 0.03, 0},
			mgl64.Vec3{b.w * 0.6, 0.06, 0.06},
			parchment, tags.Contents)
		rotate(scroll, mgl64.Vec3{0, (rng.Float64() - 0.5) * 0.5, 0})

	default:
		orb := part(w, "orb", drawer,
			mgl64.Vec3{0, -b.h/2 + 0.05, 0},
			mgl64.Vec3{0.1, 0.1, 0.1},
			ruby, tags.Contents)
		components.Mesh.Get(orb).Shape = components.ShapeGem
	}
}
