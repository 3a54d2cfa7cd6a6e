package score

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/validate"
)

// Submitter defaults. Retries are bounded so a dead backend can never
// hold a session hostage.
const (
	DefaultMaxAttempts    = 3
	DefaultBaseBackoff    = 500 * time.Millisecond
	DefaultAttemptTimeout = 2 * time.Second
)

// Outcome is the terminal state of one submission task.
type Outcome struct {
	// Receipt is set when the submission was accepted.
	Receipt *Receipt

	// Err holds the final error: a validation failure (not retried) or
	// the last transient error after retries were exhausted.
	Err error

	// GaveUp marks retry exhaustion on transient errors. The run's local
	// score stays visible to the player; it just never reaches the
	// leaderboard this session.
	GaveUp bool

	Attempts int
}

// Accepted reports whether the submission reached durable storage.
func (o Outcome) Accepted() bool {
	return o.Receipt != nil
}

// Submitter executes one submission as a bounded-retry task: up to
// maxAttempts tries, each under its own timeout, with doubling backoff in
// between, then a terminal give-up. Callers run Submit off the simulation
// loop (e.g. inside a tea.Cmd); the game never waits on its outcome.
type Submitter struct {
	svc            *Service
	logger         *log.Logger
	maxAttempts    int
	baseBackoff    time.Duration
	attemptTimeout time.Duration
}

// NewSubmitter creates a submitter with default retry policy.
func NewSubmitter(svc *Service, logger *log.Logger) *Submitter {
	return &Submitter{
		svc:            svc,
		logger:         logger,
		maxAttempts:    DefaultMaxAttempts,
		baseBackoff:    DefaultBaseBackoff,
		attemptTimeout: DefaultAttemptTimeout,
	}
}

// WithPolicy overrides the retry parameters. Zero values keep defaults.
func (s *Submitter) WithPolicy(maxAttempts int, baseBackoff, attemptTimeout time.Duration) *Submitter {
	if maxAttempts > 0 {
		s.maxAttempts = maxAttempts
	}
	if baseBackoff > 0 {
		s.baseBackoff = baseBackoff
	}
	if attemptTimeout > 0 {
		s.attemptTimeout = attemptTimeout
	}
	return s
}

// Submit runs the submission task to a terminal state. It blocks the
// calling goroutine only, never the simulation.
func (s *Submitter) Submit(ctx context.Context, res game.RunResult) Outcome {
	out := Outcome{}
	backoff := s.baseBackoff

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		out.Attempts = attempt

		attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
		receipt, err := s.svc.Submit(attemptCtx, res)
		cancel()

		if err == nil {
			out.Receipt = &receipt
			s.logger.Info("score submitted",
				"player", res.PlayerName,
				"score", res.Score,
				"rank", receipt.Rank,
				"attempt", attempt)
			return out
		}

		if validate.IsValidation(err) {
			// Bad input never becomes good by retrying.
			out.Err = err
			s.logger.Warn("score submission rejected", "error", err)
			return out
		}

		out.Err = err
		s.logger.Warn("score submission failed",
			"attempt", attempt,
			"max_attempts", s.maxAttempts,
			"error", err)

		if attempt == s.maxAttempts {
			break
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			out.Err = ctx.Err()
			out.GaveUp = true
			s.logger.Warn("score submission cancelled", "error", ctx.Err())
			return out
		}
		backoff *= 2
	}

	out.GaveUp = true
	s.logger.Error("score submission abandoned",
		"player", res.PlayerName,
		"score", res.Score,
		"attempts", out.Attempts,
		"error", out.Err)
	return out
}
