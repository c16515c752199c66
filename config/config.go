// Package config loads sprig settings: defaults, then an optional YAML file,
// then SPRIG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/game"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SPRIG_"

// Config holds all sprig configuration.
type Config struct {
	Game   game.Config  `yaml:"game" envPrefix:"GAME_"`
	Audio  audio.Config `yaml:"audio" envPrefix:"AUDIO_"`
	Window WindowConfig `yaml:"window" envPrefix:"WINDOW_"`
	Term   TermConfig   `yaml:"term" envPrefix:"TERM_"`

	// Script is an input script replayed by the window frontend.
	Script string `yaml:"script" env:"SCRIPT"`

	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
}

// WindowConfig configures the Ebitengine frontend.
type WindowConfig struct {
	Title         string `yaml:"title" env:"TITLE"`
	Scale         int    `yaml:"scale" env:"SCALE"`
	TPS           int    `yaml:"tps" env:"TPS"`
	ShowFPS       bool   `yaml:"show_fps" env:"SHOW_FPS"`
	ScreenshotDir string `yaml:"screenshot_dir" env:"SCREENSHOT_DIR"`
}

// TermConfig configures the terminal frontend.
type TermConfig struct {
	// FPS is the redraw and step rate.
	FPS int `yaml:"fps" env:"FPS"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Debug bool `yaml:"debug" env:"DEBUG"`
	// File, when set, receives logs instead of stderr.
	File string `yaml:"file" env:"FILE"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Game:  game.DefaultConfig(),
		Audio: audio.Config{Volume: 0.5},
		Window: WindowConfig{
			Title:         "sprig",
			Scale:         3,
			TPS:           60,
			ScreenshotDir: "screenshots",
		},
		Term: TermConfig{FPS: 30},
	}
}

// Load reads the YAML file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv overrides target from SPRIG_* environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports the first setting that cannot run.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	switch {
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio: volume %g must be within [0, 1]", c.Audio.Volume)
	case c.Window.Scale < 1:
		return fmt.Errorf("window: scale %d must be at least 1", c.Window.Scale)
	case c.Window.TPS < 1:
		return fmt.Errorf("window: tps %d must be at least 1", c.Window.TPS)
	case c.Term.FPS < 1:
		return fmt.Errorf("term: fps %d must be at least 1", c.Term.FPS)
	}
	return nil
}
