package systems

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/cabinet/components"
	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/gamemath"
	"github.com/automoto/cabinet/geometry"
	"github.com/automoto/cabinet/scenegraph"
)

// face is one projected, shaded triangle.
type face struct {
	x, y  [3]float32
	depth float64
	clr   color.RGBA
}

// Index buffers are uint16, so one DrawTriangles call holds at most this
// many vertices.
const maxBatchVertices = 65535 - 2

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	renderFaces    []face
	renderVertices []ebiten.Vertex
	renderIndices  []uint16
	trianglesOp    = &ebiten.DrawTrianglesOptions{}
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawScene renders every mesh back to front with flat shading.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := camera.ViewProjection(float64(width) / float64(height))

	var hovered *donburi.Entry
	if cursor, ok := components.Cursor.First(e.World); ok {
		hovered = components.Cursor.Get(cursor).Hovered
	}

	light := geometry.Light{
		Key:      cfg.Render.LightDir,
		Fill:     cfg.Render.FillDir,
		Ambient:  cfg.Render.Ambient,
		KeyGain:  cfg.Render.KeyStrength,
		FillGain: cfg.Render.FillStrength,
	}

	renderFaces = renderFaces[:0]
	components.Mesh.Each(e.World, func(entry *donburi.Entry) {
		mesh := components.Mesh.Get(entry)
		world := scenegraph.WorldMatrix(entry)

		tint := 0.0
		if hovered != nil {
			if owner, ok := scenegraph.FindInteractive(entry); ok && scenegraph.Same(owner, hovered) {
				tint = cfg.Render.HoverTint
			}
		}

		for _, local := range geometry.Tessellate(mesh) {
			tri := local.Transform(world)
			if tri.FacesAway(camera.Position) {
				continue
			}

			var f face
			visible := true
			for i, v := range [3]mgl64.Vec3{tri.A, tri.B, tri.C} {
				x, y, _, ok := gamemath.Project(v, vp, width, height)
				if !ok {
					visible = false
					break
				}
				f.x[i], f.y[i] = float32(x), float32(y)
			}
			if !visible {
				continue
			}

			f.depth = tri.Centroid().Sub(camera.Position).Len()
			f.clr = geometry.Shade(mesh.Color, light.Intensity(tri.Normal()), tint)
			renderFaces = append(renderFaces, f)
		}
	})

	// Painter's algorithm: farthest first
	slices.SortStableFunc(renderFaces, func(a, b face) int {
		return cmp.Compare(b.depth, a.depth)
	})

	renderVertices = renderVertices[:0]
	renderIndices = renderIndices[:0]
	for _, f := range renderFaces {
		if len(renderVertices)+3 > maxBatchVertices {
			flushTriangles(screen)
		}
		base := uint16(len(renderVertices))
		r, g, b, a := float32(f.clr.R)/255, float32(f.clr.G)/255, float32(f.clr.B)/255, float32(f.clr.A)/255
		for i := 0; i < 3; i++ {
			renderVertices = append(renderVertices, ebiten.Vertex{
				DstX:   f.x[i],
				DstY:   f.y[i],
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: a,
			})
		}
		renderIndices = append(renderIndices, base, base+1, base+2)
	}
	flushTriangles(screen)
}

func flushTriangles(screen *ebiten.Image) {
	if len(renderIndices) == 0 {
		return
	}
	screen.DrawTriangles(renderVertices, renderIndices, whiteSubImage, trianglesOp)
	renderVertices = renderVertices[:0]
	renderIndices = renderIndices[:0]
}
