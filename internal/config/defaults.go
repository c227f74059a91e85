package config

import (
	_ "embed"
)

//go:embed defaults/scorch.yaml
var defaultScorchYAML []byte

// DefaultScorchConfig returns the default match configuration.
func DefaultScorchConfig() ScorchConfig {
	return ScorchConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:           200,
			DragCoefficient:   0.0025,
			MaxMuzzleVelocity: 750,
			ShellMass:         100,
		},
		Weather: WeatherConfig{
			MaxWind: 10,
		},
		Match: MatchRules{
			Players:         2,
			ExplosionRadius: 50,
			MaxFlightTime:   60,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultScorchYAML
}
