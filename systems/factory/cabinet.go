package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"github.com/automoto/cabinet/archetypes"
	"github.com/automoto/cabinet/components"
	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/tags"
)

// Cabinet is what the content provider hands to the interaction controller.
type Cabinet struct {
	Body    *donburi.Entry
	Drawers []*donburi.Entry
	Diamond *donburi.Entry // nil when the configured cell is outside the grid
}

// DrawerName returns the identifier of the drawer at row r, column c.
func DrawerName(r, c int) string {
	return fmt.Sprintf("drawer_%d_%d", r, c)
}

func CreateRoot(w donburi.World) *donburi.Entry {
	root := archetypes.Root.Spawn(w)
	components.Node.SetValue(root, components.NodeData{Name: "scene"})
	return root
}

func CreateFloor(w donburi.World, root *donburi.Entry) *donburi.Entry {
	size := cfg.Cabinet.FloorSize
	return part(w, "floor", root,
		mgl64.Vec3{0, -0.005, 0},
		mgl64.Vec3{size, 0.01, size},
		cfg.Cabinet.FloorColor,
		tags.Floor,
	)
}

// CreateCabinet builds the hollow body, its shelves and a grid of drawers
// with their contents. rng decides the filler contents.
func CreateCabinet(w donburi.World, root *donburi.Entry, rng *rand.Rand) *Cabinet {
	c := cfg.Cabinet
	t := c.Thickness
	wood, inner := c.WoodColor, c.InnerColor

	body := group(w, "cabinet", root, mgl64.Vec3{0, c.Height / 2, 0}, tags.Cabinet)

	part(w, "back", body, mgl64.Vec3{0, 0, -c.Depth/2 + t/2}, mgl64.Vec3{c.Width, c.Height, t}, wood)
	part(w, "left", body, mgl64.Vec3{-c.Width/2 + t/2, 0, 0}, mgl64.Vec3{t, c.Height, c.Depth}, wood)
	part(w, "right", body, mgl64.Vec3{c.Width/2 - t/2, 0, 0}, mgl64.Vec3{t, c.Height, c.Depth}, wood)
	part(w, "top", body, mgl64.Vec3{0, c.Height/2 - t/2, 0}, mgl64.Vec3{c.Width - 2*t, t, c.Depth}, wood)
	part(w, "bottom", body, mgl64.Vec3{0, -c.Height/2 + t/2, 0}, mgl64.Vec3{c.Width - 2*t, t, c.Depth}, wood)

	cellW := (c.Width - 2*t) / float64(c.Cols)
	cellH := (c.Height - 2*t) / float64(c.Rows)

	for i := 1; i < c.Rows; i++ {
		part(w, fmt.Sprintf("shelf_%d", i), body,
			mgl64.Vec3{0, -c.Height/2 + t + float64(i)*cellH, 0},
			mgl64.Vec3{c.Width - 2*t, 0.02, c.Depth - 0.05},
			inner)
	}

	box := drawerBox{
		w: cellW - c.DrawerGap,
		h: cellH - c.DrawerGap,
		d: c.Depth - t - c.DrawerGap,
		t: c.DrawerThickness,
	}
	startX := -c.Width/2 + t + cellW/2
	startY := c.Height/2 - t - cellH/2
	// fronts flush with the body
	z := c.Depth/2 - box.d/2

	cab := &Cabinet{Body: body}
	for r := 0; r < c.Rows; r++ {
		for col := 0; col < c.Cols; col++ {
			pos := mgl64.Vec3{startX + float64(col)*cellW, startY - float64(r)*cellH, z}
			d := createDrawer(w, body, DrawerName(r, col), pos, box)
			cab.Drawers = append(cab.Drawers, d)

			switch {
			case r == c.DiamondRow && col == c.DiamondCol:
				cab.Diamond = createDiamond(w, d, box)
			case r == c.ToyCarRow && col == c.ToyCarCol:
				createToyCar(w, d, box)
			default:
				createFiller(w, d, box, rng)
			}
		}
	}
	return cab
}

// drawerBox holds the outer extents and wall thickness of one drawer.
type drawerBox struct {
	w, h, d, t float64
}

func createDrawer(w donburi.World, body *donburi.Entry, name string, pos mgl64.Vec3, b drawerBox) *donburi.Entry {
	wood, inner, brass := cfg.Cabinet.WoodColor, cfg.Cabinet.InnerColor, cfg.Cabinet.HandleColor

	d := archetypes.Drawer.Spawn(w)
	components.Node.SetValue(d, components.NodeData{Name: name, Parent: body, Position: pos})
	components.Interactive.SetValue(d, components.InteractiveData{
		ID:   uuid.NewString(),
		Name: name,
		Role: components.RoleDrawer,
	})
	components.Drawer.SetValue(d, components.DrawerData{RestPosition: pos, State: components.DrawerClosed})

	part(w, name+"_front", d, mgl64.Vec3{0, 0, b.d/2 - b.t/2}, mgl64.Vec3{b.w, b.h, b.t}, wood)
	part(w, name+"_bottom", d, mgl64.Vec3{0, -b.h/2 + b.t/2, -b.t / 2}, mgl64.Vec3{b.w, b.t, b.d - b.t}, inner)
	part(w, name+"_back", d, mgl64.Vec3{0, 0, -b.d/2 + b.t/2}, mgl64.Vec3{b.w, b.h, b.t}, inner)
	part(w, name+"_left", d, mgl64.Vec3{-b.w/2 + b.t/2, 0, 0}, mgl64.Vec3{b.t, b.h, b.d - 2*b.t}, inner)
	part(w, name+"_right", d, mgl64.Vec3{b.w/2 - b.t/2, 0, 0}, mgl64.Vec3{b.t, b.h, b.d - 2*b.t}, inner)

	part(w, name+"_handle", d, mgl64.Vec3{0, 0, b.d/2 + 0.01}, mgl64.Vec3{0.06, 0.02, 0.02}, brass)
	part(w, name+"_plate", d, mgl64.Vec3{0, 0.05, b.d/2 + 0.002}, mgl64.Vec3{0.08, 0.05, 0.004}, brass)
	return d
}
