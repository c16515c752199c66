package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sprig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 320.0, cfg.Game.Width)
	assert.Equal(t, 180.0, cfg.Game.Height)
	assert.Equal(t, 60, cfg.Window.TPS)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sprig", cfg.Window.Title)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
game:
  max_level: 5
  enemy_force: 0.75
audio:
  mute: true
window:
  scale: 2
logging:
  debug: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Game.MaxLevel)
	assert.Equal(t, 0.75, cfg.Game.EnemyForce)
	assert.Equal(t, 0.92, cfg.Game.EnemyFriction, "unset keys keep defaults")
	assert.True(t, cfg.Audio.Mute)
	assert.Equal(t, 0.5, cfg.Audio.Volume)
	assert.Equal(t, 2, cfg.Window.Scale)
	assert.True(t, cfg.Logging.Debug)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "game: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "game:\n  max_level: 5\n")
	t.Setenv("SPRIG_GAME_MAX_LEVEL", "7")
	t.Setenv("SPRIG_AUDIO_VOLUME", "0.25")
	t.Setenv("SPRIG_WINDOW_TITLE", "arena")
	t.Setenv("SPRIG_LOG_DEBUG", "true")
	t.Setenv("SPRIG_SCRIPT", "demo.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Game.MaxLevel)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, "arena", cfg.Window.Title)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, "demo.yaml", cfg.Script)
}

func TestEnvParseError(t *testing.T) {
	t.Setenv("SPRIG_WINDOW_SCALE", "big")
	_, err := Load("")
	assert.ErrorContains(t, err, "parse env:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"game", func(c *Config) { c.Game.MaxLevel = 0 }, "game: max level"},
		{"volume", func(c *Config) { c.Audio.Volume = 2 }, "audio: volume"},
		{"scale", func(c *Config) { c.Window.Scale = 0 }, "window: scale"},
		{"tps", func(c *Config) { c.Window.TPS = 0 }, "window: tps"},
		{"term fps", func(c *Config) { c.Term.FPS = 0 }, "term: fps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestSaveRoundTrips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Game.MaxLevel = 4
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
