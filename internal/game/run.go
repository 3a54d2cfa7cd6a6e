package game

import "time"

// Run is the mutable aggregate for one play session. It is created on
// the transition to Playing, mutated every tick, frozen into a RunResult
// on game over and discarded on the next Playing transition.
type Run struct {
	Ticks         int     // Playing ticks only; paused time is not counted
	Avoided       int     // Obstacles that scrolled off uncollided
	Speed         float64 // Current scroll speed
	SpawnInterval int     // Current spawn countdown reset value, in ticks
	PeakSpeed     float64
	StartedAt     time.Time

	score float64 // Continuous accumulator; exposed floored
}

// NewRun creates a run with the base difficulty outputs.
func NewRun(baseSpeed float64, baseInterval int) *Run {
	return &Run{
		Speed:         baseSpeed,
		SpawnInterval: baseInterval,
		PeakSpeed:     baseSpeed,
		StartedAt:     time.Now(),
	}
}

// AddScore accumulates score. Negative deltas are ignored so the score
// stays monotonically non-decreasing within a run.
func (r *Run) AddScore(points float64) {
	if points > 0 {
		r.score += points
	}
}

// Score returns the floor of the accumulated score.
func (r *Run) Score() int {
	return int(r.score)
}

// SetSpeed records the current speed and tracks the peak.
func (r *Run) SetSpeed(speed float64) {
	r.Speed = speed
	if speed > r.PeakSpeed {
		r.PeakSpeed = speed
	}
}

// RunResult is the immutable snapshot exported when a run ends.
// It is sent to the ranking service at most once per run.
type RunResult struct {
	PlayerName       string
	Score            int
	ObstaclesAvoided int
	DurationSeconds  int
	PeakSpeed        float64
}

// Freeze exports the run's final statistics. Duration is derived from
// playing ticks at the given tick rate, so paused time is excluded.
func (r *Run) Freeze(tickRate int) RunResult {
	if tickRate <= 0 {
		tickRate = 60
	}
	return RunResult{
		Score:            r.Score(),
		ObstaclesAvoided: r.Avoided,
		DurationSeconds:  r.Ticks / tickRate,
		PeakSpeed:        r.PeakSpeed,
	}
}
