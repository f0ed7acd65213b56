package sketch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-mazur/p5/sketch"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "width: 400\ntitle: Waves\nvsync: false\nbackend: shiny\n")

	cfg, err := sketch.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, sketch.DefaultHeight, cfg.Height)
	assert.Equal(t, "Waves", cfg.Title)
	assert.False(t, cfg.VSync)
	assert.Equal(t, sketch.BackendShiny, cfg.Backend)
	assert.Equal(t, float64(sketch.DefaultFrameRate), cfg.FrameRate)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "width: [1, 2"},
		{"zero width", "width: 0"},
		{"negative frame rate", "frame_rate: -1"},
		{"unknown backend", "backend: vulkan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sketch.LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := sketch.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultConfig(t *testing.T) {
	cfg := sketch.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "p5py", cfg.Title)
	assert.True(t, cfg.VSync)
	assert.False(t, cfg.Resizable)
}
