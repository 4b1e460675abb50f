package scenegraph

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/automoto/cabinet/archetypes"
	"github.com/automoto/cabinet/components"
)

func spawnGroup(w donburi.World, name string, parent *donburi.Entry, pos mgl64.Vec3) *donburi.Entry {
	e := archetypes.Group.Spawn(w)
	components.Node.SetValue(e, components.NodeData{Name: name, Parent: parent, Position: pos})
	return e
}

func TestWorldPositionComposesParents(t *testing.T) {
	w := donburi.NewWorld()
	body := spawnGroup(w, "body", nil, mgl64.Vec3{0, 1.25, 0})
	drawer := spawnGroup(w, "drawer", body, mgl64.Vec3{-0.7, 0.9, 0.02})
	item := spawnGroup(w, "item", drawer, mgl64.Vec3{0, -0.1, 0})

	assert.True(t, WorldPosition(item).ApproxEqualThreshold(mgl64.Vec3{-0.7, 2.05, 0.02}, 1e-12))
	assert.True(t, Same(Parent(item), drawer))
	assert.Nil(t, Parent(body))
}

func TestWorldMatrixAppliesParentRotation(t *testing.T) {
	w := donburi.NewWorld()
	pivot := spawnGroup(w, "pivot", nil, mgl64.Vec3{1, 0, 0})
	components.Node.Get(pivot).Rotation = mgl64.Vec3{0, math.Pi / 2, 0}
	child := spawnGroup(w, "child", pivot, mgl64.Vec3{1, 0, 0})

	assert.True(t, WorldPosition(child).ApproxEqualThreshold(mgl64.Vec3{1, 0, -1}, 1e-9))
}

func TestFindInteractiveWalksUp(t *testing.T) {
	w := donburi.NewWorld()
	body := spawnGroup(w, "body", nil, mgl64.Vec3{})

	drawer := archetypes.Drawer.Spawn(w)
	components.Node.SetValue(drawer, components.NodeData{Name: "drawer_0_0", Parent: body})
	components.Interactive.SetValue(drawer, components.InteractiveData{Name: "drawer_0_0", Role: components.RoleDrawer})

	front := archetypes.Part.Spawn(w)
	components.Node.SetValue(front, components.NodeData{Name: "front", Parent: drawer})

	found, ok := FindInteractive(front)
	require.True(t, ok)
	assert.True(t, Same(found, drawer))
	assert.Equal(t, "drawer_0_0", Name(found))

	_, ok = FindInteractive(body)
	assert.False(t, ok)
}

func TestParentCycleTerminates(t *testing.T) {
	w := donburi.NewWorld()
	a := spawnGroup(w, "a", nil, mgl64.Vec3{})
	b := spawnGroup(w, "b", a, mgl64.Vec3{})
	components.Node.Get(a).Parent = b

	_, ok := FindInteractive(a)
	assert.False(t, ok)
	_ = WorldMatrix(a)
}
