package config

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CabinetConfig contains the dimensions used by the scene content provider
type CabinetConfig struct {
	Width     float64
	Height    float64
	Depth     float64
	Cols      int
	Rows      int
	Thickness float64

	DrawerGap       float64 // clearance between a drawer and its slot
	DrawerThickness float64 // wall thickness of a drawer box

	// Cell holding the diamond and the toy car
	DiamondRow, DiamondCol int
	ToyCarRow, ToyCarCol   int

	WoodColor   color.RGBA
	InnerColor  color.RGBA
	HandleColor color.RGBA
	FloorColor  color.RGBA
	FloorSize   float64
}

// InteractionConfig contains drawer and camera animation tuning
type InteractionConfig struct {
	DrawerOpenOffset mgl64.Vec3 // translation from rest to open, along the cabinet's outward normal
	DrawerDuration   time.Duration
	DrawerEasing     string

	CameraFocusOffset mgl64.Vec3 // camera position relative to the focused drawer's world position
	CameraDuration    time.Duration
	CameraEasing      string
}

// CameraConfig contains the perspective camera and its overview pose
type CameraConfig struct {
	FOV              float64 // degrees
	Near             float64
	Far              float64
	Up               mgl64.Vec3
	OverviewPosition mgl64.Vec3
	OverviewLookAt   mgl64.Vec3
}

// DiamondConfig contains the diamond's idle spin
type DiamondConfig struct {
	Size     float64
	SpinRate mgl64.Vec3 // radians per second about X, Y, Z
	Color    color.RGBA
}

// NavigationConfig contains the external resource opened by the diamond
type NavigationConfig struct {
	Target string
}

// RenderConfig contains software renderer settings
type RenderConfig struct {
	Background   color.RGBA
	LightDir     mgl64.Vec3 // direction the key light travels
	FillDir      mgl64.Vec3
	Ambient      float64
	KeyStrength  float64
	FillStrength float64
	HoverTint    float64 // brightness boost for the hovered object
}

// HUDConfig contains hover label styling
type HUDConfig struct {
	Margin      int
	TextColor   color.RGBA
	HintColor   color.RGBA
	Hint        string
	FocusedHint string
}

// PortalConfig contains the navigation target scene styling
type PortalConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	ReturnHint      string
}

// DebugConfig contains command-line debug options
type DebugConfig struct {
	Verbose bool  // debug level logging
	Seed    int64 // seed for random drawer contents
	Overlay bool  // draw the debug overlay
}

// Global configuration instances
var C *Config
var Cabinet CabinetConfig
var Interaction InteractionConfig
var Camera CameraConfig
var Diamond DiamondConfig
var Navigation NavigationConfig
var Render RenderConfig
var HUD HUDConfig
var Portal PortalConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Mahogany     = color.RGBA{R: 0x35, G: 0x20, B: 0x15, A: 255}
	DarkOak      = color.RGBA{R: 0x3d, G: 0x28, B: 0x17, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	NightSky     = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Curio Cabinet",
	}

	Cabinet = CabinetConfig{
		Width:     2.0,
		Height:    2.5,
		Depth:     0.8,
		Cols:      4,
		Rows:      6,
		Thickness: 0.05,

		DrawerGap:       0.02,
		DrawerThickness: 0.02,

		DiamondRow: 0, DiamondCol: 0,
		ToyCarRow: 0, ToyCarCol: 1,

		WoodColor:   Mahogany,
		InnerColor:  DarkOak,
		HandleColor: Gold,
		FloorColor:  color.RGBA{R: 20, G: 14, B: 10, A: 255},
		FloorSize:   10,
	}

	Interaction = InteractionConfig{
		DrawerOpenOffset: mgl64.Vec3{0, 0, 0.5},
		DrawerDuration:   1000 * time.Millisecond,
		DrawerEasing:     "out-cubic",

		CameraFocusOffset: mgl64.Vec3{0, 1.5, 1.5},
		CameraDuration:    1500 * time.Millisecond,
		CameraEasing:      "out-quad",
	}

	// Camera sits to the right so the cabinet lines up with the left side of the window
	Camera = CameraConfig{
		FOV:              45,
		Near:             0.1,
		Far:              1000,
		Up:               mgl64.Vec3{0, 1, 0},
		OverviewPosition: mgl64.Vec3{1.5, 1.2, 5.5},
		OverviewLookAt:   mgl64.Vec3{0, 1.2, 0},
	}

	Diamond = DiamondConfig{
		Size:     0.12,
		SpinRate: mgl64.Vec3{0.2, 0.5, 0},
		Color:    color.RGBA{R: 235, G: 245, B: 255, A: 255},
	}

	Navigation = NavigationConfig{
		Target: "asgard.html",
	}

	// Cool window light from behind, warm candle fill from the front
	Render = RenderConfig{
		Background:   NightSky,
		LightDir:     mgl64.Vec3{-0.4, -0.6, -1},
		FillDir:      mgl64.Vec3{0.3, -0.2, 1},
		Ambient:      0.35,
		KeyStrength:  0.55,
		FillStrength: 0.35,
		HoverTint:    0.25,
	}

	HUD = HUDConfig{
		Margin:      16,
		TextColor:   White,
		HintColor:   LightBlue,
		Hint:        "Click a drawer to open it",
		FocusedHint: "Click the drawer again to close it",
	}

	Portal = PortalConfig{
		BackgroundColor: NightSky,
		TitleColor:      Gold,
		TextColor:       White,
		Title:           "Leaving the cabinet",
		ReturnHint:      "Click anywhere to return to the cabinet",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Verbose: false,
		Seed:    1,
		Overlay: false,
	}
}
