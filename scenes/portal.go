package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/systems"
)

// PortalScene stands in for the external page the diamond opens
type PortalScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	logger       *zap.Logger
	target       string
	once         sync.Once
}

func NewPortalScene(sc SceneChanger, logger *zap.Logger, target string) *PortalScene {
	return &PortalScene{sceneChanger: sc, logger: logger, target: target}
}

func (ps *PortalScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PortalScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Portal.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PortalScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	createCabinetScene := func() interface{} {
		return NewCabinetScene(ps.sceneChanger, ps.logger)
	}

	ps.ecs.AddSystem(systems.NewUpdatePortal(ps.sceneChanger, createCabinetScene))
	ps.ecs.AddRenderer(systems.LayerDefault, systems.NewDrawPortal(ps.target))
}
