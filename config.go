package railview

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RailPointConfig is one control point in the viewer config file.
type RailPointConfig struct {
	Position [3]float64 `toml:"position"`
	LookAt   [3]float64 `toml:"look_at"`
}

// ViewerConfig drives the demo shell: window geometry, the content
// identifier to load, and the rail the camera travels.
type ViewerConfig struct {
	Width   int               `toml:"width"`
	Height  int               `toml:"height"`
	Content string            `toml:"content"`
	Rail    []RailPointConfig `toml:"rail"`
}

// DefaultViewerConfig is what the shell runs with when no config file is
// present: a cube orbited by a three-point rail.
func DefaultViewerConfig() *ViewerConfig {
	return &ViewerConfig{
		Width:   640,
		Height:  480,
		Content: "proc:cube",
		Rail: []RailPointConfig{
			{Position: [3]float64{0, 60, -320}, LookAt: [3]float64{0, 0, 0}},
			{Position: [3]float64{260, 140, 0}, LookAt: [3]float64{0, 0, 0}},
			{Position: [3]float64{0, 60, 320}, LookAt: [3]float64{0, 0, 0}},
		},
	}
}

// LoadViewerConfig reads a TOML config file. A missing file falls back to
// the defaults; a malformed one is an error.
func LoadViewerConfig(path string) (*ViewerConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultViewerConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read viewer config %s: %w", path, err)
	}

	cfg := DefaultViewerConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse viewer config %s: %w", path, err)
	}
	return cfg, nil
}

// BuildRail converts the configured control points into a rail.
func (c *ViewerConfig) BuildRail() *Rail {
	rail := NewRail()
	for _, p := range c.Rail {
		rail.AppendPoint(NewControlPoint(
			NewVector3(p.Position[0], p.Position[1], p.Position[2]),
			NewVector3(p.LookAt[0], p.LookAt[1], p.LookAt[2]),
		))
	}
	return rail
}
