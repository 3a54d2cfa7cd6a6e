// Package config provides YAML-based game configuration loading and the
// score-driven difficulty scaler for the runner.
package config

// RunnerConfig contains all tunable parameters for the runner game.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines vertical motion parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlayerConfig defines the runner's collision box and screen placement.
type PlayerConfig struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// ScoringConfig defines how score accumulates during a run.
type ScoringConfig struct {
	// PointsPerTick is the continuous time-based score rate.
	PointsPerTick float64 `yaml:"points_per_tick"`
	// AvoidBonus is added whenever an obstacle scrolls off-screen uncollided.
	AvoidBonus int `yaml:"avoid_bonus"`
}

// DifficultyConfig defines the step-wise score-to-difficulty mapping.
// Speed rises and the spawn interval shrinks by one step per ScoreQuantum
// of accumulated score; the spawn interval never drops below its floor.
type DifficultyConfig struct {
	BaseSpeed         float64 `yaml:"base_speed"`
	SpeedStep         float64 `yaml:"speed_step"`
	MaxSpeed          float64 `yaml:"max_speed"`
	ScoreQuantum      int     `yaml:"score_quantum"`
	BaseSpawnInterval int     `yaml:"base_spawn_interval"`
	IntervalStep      int     `yaml:"interval_step"`
	MinSpawnInterval  int     `yaml:"min_spawn_interval"`
}

// DifficultyPreset represents a named difficulty level selectable per player.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the given string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset adjusts the difficulty parameters for a named preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.BaseSpeed *= 0.8
		cfg.Difficulty.BaseSpawnInterval += 30
		cfg.Difficulty.MinSpawnInterval += 15
	case DifficultyHard:
		cfg.Difficulty.BaseSpeed *= 1.25
		cfg.Difficulty.BaseSpawnInterval -= 30
		if cfg.Difficulty.BaseSpawnInterval < cfg.Difficulty.MinSpawnInterval {
			cfg.Difficulty.BaseSpawnInterval = cfg.Difficulty.MinSpawnInterval
		}
	}
}
