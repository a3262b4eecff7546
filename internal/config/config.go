// Package config loads and stores the sketchpad's persistent settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/GateSketch/pkg/grid"
	"github.com/OpenTraceLab/GateSketch/pkg/sketch/render"
)

// AppConfig stores persistent application settings
type AppConfig struct {
	Theme        int    `json:"theme"` // render.Theme, stored as int for JSON compatibility
	CanvasWidth  int    `json:"canvas_width"`
	CanvasHeight int    `json:"canvas_height"`
	Catalog      string `json:"catalog,omitempty"` // extra gate definitions

	path string
}

// Default returns the settings used when no config file exists.
func Default() *AppConfig {
	return &AppConfig{
		Theme:        int(render.ThemeLight),
		CanvasWidth:  grid.DefaultWidth,
		CanvasHeight: grid.DefaultHeight,
	}
}

// ColorTheme returns the configured colour scheme.
func (c *AppConfig) ColorTheme() render.Theme {
	return render.Theme(c.Theme)
}

// Grid returns the snap grid covering the configured canvas.
func (c *AppConfig) Grid() grid.Grid {
	g := grid.Default()
	if c.CanvasWidth > 0 {
		g.Width = c.CanvasWidth
	}
	if c.CanvasHeight > 0 {
		g.Height = c.CanvasHeight
	}
	return g
}

// Path returns the file the config was loaded from and is saved to.
func (c *AppConfig) Path() string {
	return c.path
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	var configDir string
	// Windows: %APPDATA%\GateSketch, elsewhere ~/.config/gatesketch
	if appData := os.Getenv("APPDATA"); appData != "" {
		configDir = filepath.Join(appData, "GateSketch")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config", "gatesketch")
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads the configuration from the platform config directory.
func Load() (*AppConfig, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration stored at path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadFrom(path string) (*AppConfig, error) {
	config := Default()
	config.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if config.CanvasWidth <= 0 || config.CanvasHeight <= 0 {
		return nil, fmt.Errorf("invalid config %s: canvas size %dx%d", path, config.CanvasWidth, config.CanvasHeight)
	}

	return config, nil
}

// Save writes the configuration back to the file it was loaded from, or to
// the platform config directory.
func (c *AppConfig) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		if configPath, err = getConfigPath(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return err
	}
	c.path = configPath
	return nil
}
