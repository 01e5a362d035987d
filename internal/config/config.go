// Package config reads the viewer configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/proofview/pkg/layout"
	"github.com/aretw0/proofview/pkg/scene"
	"gopkg.in/yaml.v3"
)

// DefaultPort is the HTTP port used by "serve" when none is configured.
const DefaultPort = 8080

// Config is the structure of proofview.yaml.
type Config struct {
	Canvas  scene.Geometry    `yaml:"canvas" json:"canvas"`
	Layout  LayoutConfig      `yaml:"layout" json:"layout"`
	Palette map[string]string `yaml:"palette" json:"palette"`
	HTTP    HTTPConfig        `yaml:"http" json:"http"`
}

// LayoutConfig places the node circle.
type LayoutConfig struct {
	CenterX float64 `yaml:"center_x" json:"center_x"`
	CenterY float64 `yaml:"center_y" json:"center_y"`
	Radius  float64 `yaml:"radius" json:"radius"`
}

// HTTPConfig configures the "serve" command.
type HTTPConfig struct {
	Port int `yaml:"port" json:"port"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Canvas: scene.DefaultGeometry(),
		Layout: LayoutConfig{
			CenterX: layout.DefaultCenterX,
			CenterY: layout.DefaultCenterY,
			Radius:  layout.DefaultRadius,
		},
		Palette: map[string]string{},
		HTTP:    HTTPConfig{Port: DefaultPort},
	}
}

// Center returns the layout center as a point.
func (c *Config) Center() layout.Point {
	return layout.Point{X: c.Layout.CenterX, Y: c.Layout.CenterY}
}

// Validate rejects dimensions that cannot produce a drawable frame.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must have positive size, got %gx%g", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Canvas.NodeRadius <= 0 {
		errs = append(errs, fmt.Errorf("canvas.node_radius must be positive"))
	}
	if c.Layout.Radius <= 0 {
		errs = append(errs, fmt.Errorf("layout.radius must be positive"))
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port out of range: %d", c.HTTP.Port))
	}
	return errors.Join(errs...)
}

// Load reads a configuration file (YAML or JSON) on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config json: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config yaml: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
