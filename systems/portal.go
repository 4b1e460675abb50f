package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/fonts"
)

// NewUpdatePortal returns to the cabinet on any click, tap or Escape.
func NewUpdatePortal(sceneChanger SceneChanger, createCabinetScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			sceneChanger.ChangeScene(createCabinetScene())
		}
	}
}

// NewDrawPortal renders the navigation target page.
func NewDrawPortal(target string) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := screen.Bounds().Dx()
		height := screen.Bounds().Dy()

		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Portal.BackgroundColor, false)

		drawCentered(screen, cfg.Portal.Title, fonts.Title.Get(), height/2-40, cfg.Portal.TitleColor)
		drawCentered(screen, target, fonts.Label.Get(), height/2+10, cfg.Portal.TextColor)
		drawCentered(screen, cfg.Portal.ReturnHint, fonts.Hint.Get(), height-cfg.HUD.Margin*2, cfg.HUD.HintColor)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	x := (screen.Bounds().Dx() - w) / 2
	text.Draw(screen, s, face, x, y, clr)
}
