package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/cabinet/archetypes"
	"github.com/automoto/cabinet/components"
	cfg "github.com/automoto/cabinet/config"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Position: cfg.Camera.OverviewPosition,
		LookAt:   cfg.Camera.OverviewLookAt,
		Up:       cfg.Camera.Up,
		FOV:      cfg.Camera.FOV,
		Near:     cfg.Camera.Near,
		Far:      cfg.Camera.Far,
		Mode:     components.CameraOverview,
	})
	return camera
}
