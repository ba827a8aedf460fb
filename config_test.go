package railview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadViewerConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadViewerConfig(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, "proc:cube", cfg.Content)
	assert.Equal(t, 3, cfg.BuildRail().PointCount())
}

func TestLoadViewerConfigParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "railview.toml")
	data := `
width = 800
height = 600
content = "proc:terrain"

[[rail]]
position = [0.0, 50.0, -200.0]
look_at = [0.0, 0.0, 0.0]

[[rail]]
position = [200.0, 50.0, 0.0]
look_at = [0.0, 0.0, 0.0]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadViewerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "proc:terrain", cfg.Content)

	rail := cfg.BuildRail()
	require.Equal(t, 2, rail.PointCount())
	pose := rail.SampleAt(0)
	assert.InDelta(t, 50.0, pose.Position.Y, float64EqualityThreshold)
	assert.InDelta(t, -200.0, pose.Position.Z, float64EqualityThreshold)
}

func TestLoadViewerConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "railview.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = [not toml"), 0o644))

	_, err := LoadViewerConfig(path)
	assert.Error(t, err)
}
