package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/cabinet/components"
	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/scenegraph"
)

// DrawDebug prints frame rate, camera pose and drawer states.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	var states [4]int
	components.Drawer.Each(e.World, func(entry *donburi.Entry) {
		states[components.Drawer.Get(entry).State]++
	})

	hovered := "-"
	if cursor, ok := components.Cursor.First(e.World); ok {
		if h := components.Cursor.Get(cursor).Hovered; h != nil {
			hovered = scenegraph.Name(h)
		}
	}

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\ncamera %s pos %.2f look %.2f\ndrawers closed %d opening %d open %d closing %d\nhover %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		camera.Mode, camera.Position, camera.LookAt,
		states[components.DrawerClosed], states[components.DrawerOpening],
		states[components.DrawerOpen], states[components.DrawerClosing],
		hovered,
	)
	ebitenutil.DebugPrintAt(screen, msg, cfg.HUD.Margin, cfg.HUD.Margin)
}
