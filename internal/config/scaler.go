package config

// Scaler derives the current speed and spawn interval from accumulated
// score. It is stateless: re-evaluating at the same score always yields
// the same outputs, and both outputs are monotonic in score.
type Scaler struct {
	cfg DifficultyConfig
}

// NewScaler creates a scaler for the given difficulty parameters.
func NewScaler(cfg DifficultyConfig) Scaler {
	return Scaler{cfg: cfg}
}

// steps returns how many full score quanta have been accumulated.
func (s Scaler) steps(score int) int {
	if s.cfg.ScoreQuantum <= 0 || score <= 0 {
		return 0
	}
	return score / s.cfg.ScoreQuantum
}

// Speed returns the horizontal scroll speed for the given score.
// It rises by SpeedStep per score quantum, capped at MaxSpeed.
func (s Scaler) Speed(score int) float64 {
	speed := s.cfg.BaseSpeed + float64(s.steps(score))*s.cfg.SpeedStep
	if s.cfg.MaxSpeed > 0 && speed > s.cfg.MaxSpeed {
		return s.cfg.MaxSpeed
	}
	return speed
}

// SpawnInterval returns the obstacle spawn countdown, in ticks, for the
// given score. It shrinks by IntervalStep per score quantum but never
// drops below MinSpawnInterval.
func (s Scaler) SpawnInterval(score int) int {
	interval := s.cfg.BaseSpawnInterval - s.steps(score)*s.cfg.IntervalStep
	if interval < s.cfg.MinSpawnInterval {
		return s.cfg.MinSpawnInterval
	}
	return interval
}
