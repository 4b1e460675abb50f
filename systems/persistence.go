package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"

	cfg "github.com/automoto/cabinet/config"
)

const settingsKey = "window"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	WindowWidth  int `json:"windowWidth"`
	WindowHeight int `json:"windowHeight"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings captures the live window configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		WindowWidth:  cfg.C.Width,
		WindowHeight: cfg.C.Height,
	}
}

// ApplySavedSettings copies saved values onto the window config.
func ApplySavedSettings(s *SavedSettings) {
	if s == nil {
		return
	}
	if s.WindowWidth > 0 && s.WindowHeight > 0 {
		cfg.C.Width = s.WindowWidth
		cfg.C.Height = s.WindowHeight
	}
}
