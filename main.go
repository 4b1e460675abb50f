package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/automoto/cabinet/config"
	"github.com/automoto/cabinet/fonts"
	"github.com/automoto/cabinet/interaction"
	"github.com/automoto/cabinet/logging"
	"github.com/automoto/cabinet/scenes"
	"github.com/automoto/cabinet/systems"
)

const appName = "curio-cabinet"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	logger *zap.Logger
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(logger *zap.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		logger: logger,
	}
	g.scene = scenes.NewCabinetScene(g, logger)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if err := systems.SaveSettings(systems.CurrentSettings()); err != nil {
			g.logger.Warn("could not save settings", zap.Error(err))
		}
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the aspect ratio tracks resizes.
func (g *Game) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 {
		config.C.Width, config.C.Height = width, height
	}
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "optional YAML config overlay")
	debug := flag.Bool("debug", false, "enable debug logging and the debug overlay")
	seed := flag.Int64("seed", config.Debug.Seed, "seed for the random drawer contents")
	flag.Parse()

	config.Debug.Verbose = *debug
	config.Debug.Overlay = *debug
	config.Debug.Seed = *seed

	logger, err := logging.New(config.Debug.Verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Fatal("invalid config", zap.Error(err))
		}
	}
	if _, err := interaction.SettingsFromConfig(); err != nil {
		logger.Fatal("invalid interaction settings", zap.Error(err))
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("could not load fonts", zap.Error(err))
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err != nil {
		logger.Warn("could not load settings", zap.Error(err))
	} else {
		systems.ApplySavedSettings(saved)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", zap.Error(err))
	}
}
