package scenes

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/cabinet/components"
	cfg "github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/interaction"
	"github.com/automoto/cabinet/systems"
	"github.com/automoto/cabinet/systems/factory"
)

// CabinetScene is the interactive cabinet. Each instance builds a fresh
// world, so every drawer starts closed.
type CabinetScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	logger       *zap.Logger
	controller   *interaction.Controller
	once         sync.Once
}

func NewCabinetScene(sc SceneChanger, logger *zap.Logger) *CabinetScene {
	return &CabinetScene{sceneChanger: sc, logger: logger}
}

func (cs *CabinetScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
	components.NavigateEvent.ProcessEvents(cs.ecs.World)
}

func (cs *CabinetScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Background)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CabinetScene) configure() {
	cs.ecs = ecs.NewECS(donburi.NewWorld())
	w := cs.ecs.World

	seed := uint64(cfg.Debug.Seed)
	root := factory.CreateRoot(w)
	factory.CreateFloor(w, root)
	cabinet := factory.CreateCabinet(w, root, rand.New(rand.NewPCG(seed, seed)))
	camera := factory.CreateCamera(w)

	input := systems.NewPointerInput()
	controller, err := interaction.NewController(w, camera, input, interaction.WithLogger(cs.logger))
	if err != nil {
		// Settings are validated at startup
		cs.logger.Fatal("could not create interaction controller", zap.Error(err))
	}
	cs.controller = controller

	components.NavigateEvent.Subscribe(w, cs.onNavigate)

	cs.ecs.AddSystem(input.Update)
	cs.ecs.AddSystem(cs.tick)
	cs.ecs.AddSystem(systems.UpdateCursor)

	cs.ecs.AddRenderer(systems.LayerDefault, systems.DrawScene)
	cs.ecs.AddRenderer(systems.LayerHUD, systems.DrawHUD)
	cs.ecs.AddRenderer(systems.LayerHUD, systems.DrawDebug)

	cs.logger.Info("cabinet ready",
		zap.Int("drawers", len(cabinet.Drawers)),
		zap.Bool("diamond", cabinet.Diamond != nil),
		zap.Uint64("seed", seed))
}

func (cs *CabinetScene) tick(_ *ecs.ECS) {
	cs.controller.Tick(time.Second / time.Duration(ebiten.TPS()))
}

func (cs *CabinetScene) onNavigate(_ donburi.World, e components.NavigateEventData) {
	systems.ResetCursor()
	cs.sceneChanger.ChangeScene(NewPortalScene(cs.sceneChanger, cs.logger, e.Target))
}
