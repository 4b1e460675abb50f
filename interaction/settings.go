package interaction

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"

	"github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/tween"
)

// Settings holds the resolved animation parameters.
type Settings struct {
	DrawerOpenOffset mgl64.Vec3
	DrawerDuration   time.Duration
	DrawerEasing     ease.TweenFunc

	CameraFocusOffset mgl64.Vec3
	CameraDuration    time.Duration
	CameraEasing      ease.TweenFunc

	OverviewPosition mgl64.Vec3
	OverviewLookAt   mgl64.Vec3

	NavigationTarget string
}

// SettingsFromConfig resolves the global config into Settings.
func SettingsFromConfig() (Settings, error) {
	drawerEasing, err := tween.EasingByName(config.Interaction.DrawerEasing)
	if err != nil {
		return Settings{}, fmt.Errorf("drawer easing: %w", err)
	}
	cameraEasing, err := tween.EasingByName(config.Interaction.CameraEasing)
	if err != nil {
		return Settings{}, fmt.Errorf("camera easing: %w", err)
	}
	return Settings{
		DrawerOpenOffset: config.Interaction.DrawerOpenOffset,
		DrawerDuration:   config.Interaction.DrawerDuration,
		DrawerEasing:     drawerEasing,

		CameraFocusOffset: config.Interaction.CameraFocusOffset,
		CameraDuration:    config.Interaction.CameraDuration,
		CameraEasing:      cameraEasing,

		OverviewPosition: config.Camera.OverviewPosition,
		OverviewLookAt:   config.Camera.OverviewLookAt,

		NavigationTarget: config.Navigation.Target,
	}, nil
}
