// Package picking resolves a pointer position to the interactive object
// under it by casting a ray through the scene graph.
package picking

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/cabinet/components"
	"github.com/automoto/cabinet/gamemath"
	"github.com/automoto/cabinet/scenegraph"
)

// Intersection is one ray hit against a mesh.
type Intersection struct {
	Entry    *donburi.Entry // struck primitive
	Distance float64        // world units from the ray origin
	Point    mgl64.Vec3
}

// Hit is a resolved pick.
type Hit struct {
	Object       *donburi.Entry // entry carrying the Interactive component
	Role         components.Role
	Intersection Intersection
}

// Picker casts rays against every mesh in a world.
type Picker struct {
	world donburi.World
}

// NewPicker returns a picker over every mesh in w.
func NewPicker(w donburi.World) *Picker {
	return &Picker{world: w}
}

// Ray returns the world-space ray through ndc for cam at the given aspect.
func Ray(ndc mgl64.Vec2, cam *components.CameraData, aspect float64) gamemath.Ray {
	return gamemath.RayFromNDC(ndc, cam.View(), cam.Projection(aspect))
}

// Intersections returns every mesh hit along the ray, nearest first.
func (p *Picker) Intersections(ray gamemath.Ray) []Intersection {
	var hits []Intersection
	components.Mesh.Each(p.world, func(e *donburi.Entry) {
		if !e.HasComponent(components.Node) {
			return
		}
		mesh := components.Mesh.Get(e)
		local := ray.Transform(scenegraph.WorldMatrix(e).Inv())
		t, ok := gamemath.IntersectAABB(local, gamemath.BoxOfSize(mesh.Size))
		if !ok {
			return
		}
		hits = append(hits, Intersection{Entry: e, Distance: t, Point: ray.At(t)})
	})
	slices.SortStableFunc(hits, func(a, b Intersection) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// Pick returns the front-most interactive object under ndc. Intersections
// are visited nearest first; for each one the parent chain is walked up to
// the first Interactive ancestor. Untagged hits fall through to the next.
// Used for hover.
func (p *Picker) Pick(ndc mgl64.Vec2, cam *components.CameraData, aspect float64) (Hit, bool) {
	for _, in := range p.Intersections(Ray(ndc, cam, aspect)) {
		if hit, ok := resolve(in); ok {
			return hit, true
		}
	}
	return Hit{}, false
}

// PickNearest resolves only the nearest intersection. Untagged geometry in
// front of an interactive object blocks it. Used for clicks.
func (p *Picker) PickNearest(ndc mgl64.Vec2, cam *components.CameraData, aspect float64) (Hit, bool) {
	hits := p.Intersections(Ray(ndc, cam, aspect))
	if len(hits) == 0 {
		return Hit{}, false
	}
	return resolve(hits[0])
}

func resolve(in Intersection) (Hit, bool) {
	obj, ok := scenegraph.FindInteractive(in.Entry)
	if !ok {
		return Hit{}, false
	}
	return Hit{
		Object:       obj,
		Role:         components.Interactive.Get(obj).Role,
		Intersection: in,
	}, true
}
