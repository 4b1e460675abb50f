package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of an optional config overlay. Any field left
// out keeps its compiled-in default.
type File struct {
	Window *struct {
		Width  *int    `yaml:"width"`
		Height *int    `yaml:"height"`
		Title  *string `yaml:"title"`
	} `yaml:"window"`

	Cabinet *struct {
		Cols       *int `yaml:"cols"`
		Rows       *int `yaml:"rows"`
		DiamondRow *int `yaml:"diamondRow"`
		DiamondCol *int `yaml:"diamondCol"`
	} `yaml:"cabinet"`

	Interaction *struct {
		DrawerOpenOffset  []float64 `yaml:"drawerOpenOffset"`
		DrawerDurationMs  *int      `yaml:"drawerDurationMs"`
		DrawerEasing      *string   `yaml:"drawerEasing"`
		CameraFocusOffset []float64 `yaml:"cameraFocusOffset"`
		CameraDurationMs  *int      `yaml:"cameraDurationMs"`
		CameraEasing      *string   `yaml:"cameraEasing"`
	} `yaml:"interaction"`

	Camera *struct {
		FOV              *float64  `yaml:"fov"`
		OverviewPosition []float64 `yaml:"overviewPosition"`
		OverviewLookAt   []float64 `yaml:"overviewLookAt"`
	} `yaml:"camera"`

	Diamond *struct {
		SpinRate []float64 `yaml:"spinRate"`
	} `yaml:"diamond"`

	Navigation *struct {
		Target *string `yaml:"target"`
	} `yaml:"navigation"`
}

// LoadFile reads a YAML overlay from path and applies it to the globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Load(data)
}

// Load applies a YAML overlay to the globals.
func Load(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return f.Apply()
}

// Apply copies every set field onto the globals.
func (f *File) Apply() error {
	if w := f.Window; w != nil {
		setInt(&C.Width, w.Width)
		setInt(&C.Height, w.Height)
		if w.Title != nil {
			C.Title = *w.Title
		}
	}

	if c := f.Cabinet; c != nil {
		setInt(&Cabinet.Cols, c.Cols)
		setInt(&Cabinet.Rows, c.Rows)
		setInt(&Cabinet.DiamondRow, c.DiamondRow)
		setInt(&Cabinet.DiamondCol, c.DiamondCol)
		if Cabinet.Cols <= 0 || Cabinet.Rows <= 0 {
			return fmt.Errorf("cabinet needs at least one row and column, got %dx%d", Cabinet.Rows, Cabinet.Cols)
		}
	}

	if i := f.Interaction; i != nil {
		if err := setVec(&Interaction.DrawerOpenOffset, i.DrawerOpenOffset, "interaction.drawerOpenOffset"); err != nil {
			return err
		}
		if err := setVec(&Interaction.CameraFocusOffset, i.CameraFocusOffset, "interaction.cameraFocusOffset"); err != nil {
			return err
		}
		setDuration(&Interaction.DrawerDuration, i.DrawerDurationMs)
		setDuration(&Interaction.CameraDuration, i.CameraDurationMs)
		if i.DrawerEasing != nil {
			Interaction.DrawerEasing = *i.DrawerEasing
		}
		if i.CameraEasing != nil {
			Interaction.CameraEasing = *i.CameraEasing
		}
	}

	if c := f.Camera; c != nil {
		if c.FOV != nil {
			Camera.FOV = *c.FOV
		}
		if err := setVec(&Camera.OverviewPosition, c.OverviewPosition, "camera.overviewPosition"); err != nil {
			return err
		}
		if err := setVec(&Camera.OverviewLookAt, c.OverviewLookAt, "camera.overviewLookAt"); err != nil {
			return err
		}
	}

	if d := f.Diamond; d != nil {
		if err := setVec(&Diamond.SpinRate, d.SpinRate, "diamond.spinRate"); err != nil {
			return err
		}
	}

	if n := f.Navigation; n != nil && n.Target != nil {
		Navigation.Target = *n.Target
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, ms *int) {
	if ms != nil {
		*dst = time.Duration(*ms) * time.Millisecond
	}
}

func setVec(dst *mgl64.Vec3, v []float64, name string) error {
	if v == nil {
		return nil
	}
	if len(v) != 3 {
		return fmt.Errorf("%s: want 3 components, got %d", name, len(v))
	}
	*dst = mgl64.Vec3{v[0], v[1], v[2]}
	return nil
}
