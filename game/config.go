package game

import (
	"fmt"

	"github.com/phanxgames/sprig/motion"
)

// Config holds gameplay tuning. Durations are milliseconds.
type Config struct {
	Width  float64 `yaml:"width" env:"WIDTH"`
	Height float64 `yaml:"height" env:"HEIGHT"`

	// Reach is the distance under which the player counts as arrived.
	Reach float64 `yaml:"reach" env:"REACH"`

	LevelUp    float64 `yaml:"level_up" env:"LEVEL_UP"`
	LevelReset float64 `yaml:"level_reset" env:"LEVEL_RESET"`
	MaxLevel   int     `yaml:"max_level" env:"MAX_LEVEL"`

	EnemyMass     float64 `yaml:"enemy_mass" env:"ENEMY_MASS"`
	EnemyFriction float64 `yaml:"enemy_friction" env:"ENEMY_FRICTION"`
	EnemyForce    float64 `yaml:"enemy_force" env:"ENEMY_FORCE"`
	DashEvery     float64 `yaml:"dash_every" env:"DASH_EVERY"`
	DashFor       float64 `yaml:"dash_for" env:"DASH_FOR"`

	ProjectileSpeed    float64 `yaml:"projectile_speed" env:"PROJECTILE_SPEED"`
	ProjectileFriction float64 `yaml:"projectile_friction" env:"PROJECTILE_FRICTION"`
	ProjectileLife     float64 `yaml:"projectile_life" env:"PROJECTILE_LIFE"`
	HitRadius          float64 `yaml:"hit_radius" env:"HIT_RADIUS"`
	Knockback          float64 `yaml:"knockback" env:"KNOCKBACK"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 180,
		Reach:  8,

		LevelUp:    500,
		LevelReset: 5000,
		MaxLevel:   10,

		EnemyMass:     1000,
		EnemyFriction: 0.92,
		EnemyForce:    0.5,
		DashEvery:     motion.Second,
		DashFor:       motion.Sixth,

		ProjectileSpeed:    4,
		ProjectileFriction: 0.99,
		ProjectileLife:     motion.Second,
		HitRadius:          8,
		Knockback:          3,
	}
}

// Validate reports the first setting that cannot run.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("arena size %gx%g must be positive", c.Width, c.Height)
	case c.LevelUp <= 0 || c.LevelReset <= 0:
		return fmt.Errorf("level periods must be positive")
	case c.MaxLevel < 1:
		return fmt.Errorf("max level %d must be at least 1", c.MaxLevel)
	case c.EnemyMass <= 0:
		return fmt.Errorf("enemy mass %g must be positive", c.EnemyMass)
	case c.DashEvery <= 0:
		return fmt.Errorf("dash period must be positive")
	case c.EnemyFriction < 0 || c.EnemyFriction > 1 || c.ProjectileFriction < 0 || c.ProjectileFriction > 1:
		return fmt.Errorf("friction must be within [0, 1]")
	}
	return nil
}
