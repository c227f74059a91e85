// Package config provides YAML-based match configuration loading and
// weather preset management for the artillery game.
package config

import "github.com/vovakirdan/tui-scorch/internal/engine"

// ScorchConfig contains all tunable match settings.
type ScorchConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Weather WeatherConfig `yaml:"weather"`
	Match   MatchRules    `yaml:"match"`
}

// WorldConfig defines the simulated battlefield dimensions.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the forces acting on shells.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	DragCoefficient   float64 `yaml:"drag_coefficient"`
	MaxMuzzleVelocity float64 `yaml:"max_muzzle_velocity"`
	ShellMass         float64 `yaml:"shell_mass"`
}

// WeatherConfig defines per-turn wind behavior.
type WeatherConfig struct {
	MaxWind float64 `yaml:"max_wind"`
}

// MatchRules defines the non-physics match parameters.
type MatchRules struct {
	Players         int     `yaml:"players"`
	ExplosionRadius float64 `yaml:"explosion_radius"`
	MaxFlightTime   float64 `yaml:"max_flight_time"`
}

// ToMatchConfig bridges the loaded settings into an engine config with the
// given seed. Seed lives outside the YAML so replays stay explicit.
func (c ScorchConfig) ToMatchConfig(seed int64) engine.MatchConfig {
	return engine.MatchConfig{
		MapWidth:          c.World.Width,
		MapHeight:         c.World.Height,
		Gravity:           c.Physics.Gravity,
		DragCoefficient:   c.Physics.DragCoefficient,
		MaxMuzzleVelocity: c.Physics.MaxMuzzleVelocity,
		ShellMass:         c.Physics.ShellMass,
		MaxWind:           c.Weather.MaxWind,
		Players:           c.Match.Players,
		ExplosionRadius:   c.Match.ExplosionRadius,
		MaxFlightTime:     c.Match.MaxFlightTime,
		Seed:              seed,
	}
}

// WeatherPreset represents a named wind regime.
type WeatherPreset string

const (
	WeatherClassic WeatherPreset = "classic"
	WeatherCalm    WeatherPreset = "calm"
	WeatherBreeze  WeatherPreset = "breeze"
	WeatherStorm   WeatherPreset = "storm"
)

// MaxWindForPreset returns the wind ceiling for a weather preset.
func MaxWindForPreset(preset WeatherPreset) float64 {
	switch preset {
	case WeatherCalm:
		return 0
	case WeatherBreeze:
		return 5
	case WeatherStorm:
		return 25
	default:
		return 10
	}
}

// ApplyWeatherPreset modifies the config based on a weather preset.
func ApplyWeatherPreset(cfg *ScorchConfig, preset WeatherPreset) {
	cfg.Weather.MaxWind = MaxWindForPreset(preset)
}
