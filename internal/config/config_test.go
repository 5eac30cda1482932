package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, WindowWidth, cfg.Window.Width)
	assert.Equal(t, "res", cfg.ResourceDir)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busview.yml")
	data := []byte(`
window:
  width: 640
  height: 480
  vsync: false
resource_dir: assets
log_level: debug
seed: 42
audio:
  enabled: false
  volume: 0.25
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "assets", cfg.ResourceDir)
	assert.Equal(t, "shaders", cfg.ShaderDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.25, cfg.Audio.Volume, 1e-9)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busview.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))
	t.Setenv("BUSVIEW_LOG_LEVEL", " ERROR ")
	t.Setenv("BUSVIEW_SEED", "7")
	t.Setenv("BUSVIEW_AUDIO", "off")
	t.Setenv("BUSVIEW_WINDOW_WIDTH", "1920")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1920, cfg.Window.Width)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad seed", map[string]string{"BUSVIEW_SEED": "abc"}},
		{"bad level", map[string]string{"BUSVIEW_LOG_LEVEL": "loud"}},
		{"zero width", map[string]string{"BUSVIEW_WINDOW_WIDTH": "0"}},
		{"volume too high", map[string]string{"BUSVIEW_VOLUME": "1.5"}},
		{"bad volume", map[string]string{"BUSVIEW_VOLUME": "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busview.yml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNormalizesYAMLLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busview.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: \" WARN \"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
