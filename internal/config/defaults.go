package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:      0.3,
			JumpImpulse:  -2.5,
			MaxFallSpeed: 4.0,
		},
		Player: PlayerConfig{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
		},
		Scoring: ScoringConfig{
			PointsPerTick: 0.1,
			AvoidBonus:    5,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:         0.5,
			SpeedStep:         0.1,
			MaxSpeed:          2.0,
			ScoreQuantum:      100,
			BaseSpawnInterval: 120,
			IntervalStep:      15,
			MinSpawnInterval:  45,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
