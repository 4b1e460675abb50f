package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/automoto/cabinet/components"
	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/fonts"
)

const (
	hudLabelOffset  = 18
	hudLabelPadding = 6
)

// DrawHUD renders the hint line and a label next to the hovered object.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	height := screen.Bounds().Dy()
	margin := cfg.HUD.Margin

	hint := cfg.HUD.Hint
	if cam, ok := components.Camera.First(e.World); ok && components.Camera.Get(cam).Mode == components.CameraFocused {
		hint = cfg.HUD.FocusedHint
	}
	text.Draw(screen, hint, fonts.Hint.Get(), margin, height-margin, cfg.HUD.HintColor)

	cursorEntry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	hovered := components.Cursor.Get(cursorEntry).Hovered
	if hovered == nil || !hovered.Valid() || !hovered.HasComponent(components.Interactive) {
		return
	}

	label := components.Interactive.Get(hovered).Name
	face := fonts.Label.Get()
	bounds, _ := font.BoundString(face, label)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x, y := ebiten.CursorPosition()
	x += hudLabelOffset
	y += hudLabelOffset

	vector.FillRect(screen,
		float32(x-hudLabelPadding), float32(y-h-hudLabelPadding),
		float32(w+2*hudLabelPadding), float32(h+2*hudLabelPadding),
		cfg.BlackOverlay, false)
	text.Draw(screen, label, face, x, y, cfg.HUD.TextColor)
}
