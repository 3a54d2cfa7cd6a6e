// Package score implements the submission and ranking service: it turns a
// finished run into a durable, globally comparable leaderboard entry.
// Persistence is injected through the ResultStore interface so the service
// never touches a concrete backend or ambient global state.
package score

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/validate"
)

// MaxPlayerNameLen bounds the accepted player identifier length.
const MaxPlayerNameLen = 20

// DefaultLeaderboardLimit is used when a query passes a non-positive limit.
const DefaultLeaderboardLimit = 10

// StoredResult is a persisted run record.
type StoredResult struct {
	ID               int64
	PlayerName       string
	Score            int
	ObstaclesAvoided int
	DurationSeconds  int
	CreatedAt        time.Time
}

// LeaderboardEntry is one row of the ordered top-N view. Rank is the
// 1-based position within the returned page.
type LeaderboardEntry struct {
	Rank             int
	PlayerName       string
	Score            int
	ObstaclesAvoided int
	CreatedAt        time.Time
}

// Receipt is returned for an accepted submission. Rank is computed
// atomically with the durable write: 1 + the number of previously stored
// scores strictly greater than this one. Equal scores keep insertion
// order; no secondary tiebreak is applied.
type Receipt struct {
	RecordID     int64
	Rank         int
	IsNewTopRank bool
}

// ResultStore is the persistence contract the service depends on.
// InsertResult must compute the rank in the same transaction as the
// insert, so no concurrent submission is visible between the count and
// the write.
type ResultStore interface {
	InsertResult(ctx context.Context, res game.RunResult) (recordID int64, rank int, err error)
	TopResults(limit int) ([]StoredResult, error)
	BestScore() (int, error)
}

// Service validates and persists run results and serves leaderboard queries.
type Service struct {
	store ResultStore
}

// NewService creates a ranking service backed by the given store.
func NewService(store ResultStore) *Service {
	return &Service{store: store}
}

// Validate checks a run result against the submission contract.
// Failures are validation errors: rejected synchronously, never persisted.
func Validate(res game.RunResult) error {
	if res.PlayerName == "" {
		return validate.Failf("playerName", "must not be empty")
	}
	if len(res.PlayerName) > MaxPlayerNameLen {
		return validate.Failf("playerName", "must be at most %d characters", MaxPlayerNameLen)
	}
	if res.Score < 0 {
		return validate.Failf("score", "must be non-negative, got %d", res.Score)
	}
	if res.ObstaclesAvoided < 0 {
		return validate.Failf("obstaclesAvoided", "must be non-negative, got %d", res.ObstaclesAvoided)
	}
	if res.DurationSeconds < 0 {
		return validate.Failf("durationSeconds", "must be non-negative, got %d", res.DurationSeconds)
	}
	return nil
}

// Submit validates and persists the result, returning its receipt.
// The rank in the receipt is stable: later submissions never change it.
func (s *Service) Submit(ctx context.Context, res game.RunResult) (Receipt, error) {
	if err := Validate(res); err != nil {
		return Receipt{}, err
	}

	id, rank, err := s.store.InsertResult(ctx, res)
	if err != nil {
		return Receipt{}, fmt.Errorf("score: cannot persist result: %w", err)
	}

	return Receipt{
		RecordID:     id,
		Rank:         rank,
		IsNewTopRank: rank == 1,
	}, nil
}

// Leaderboard returns the top entries ordered by score descending,
// annotated with their 1-based page position.
func (s *Service) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	stored, err := s.store.TopResults(limit)
	if err != nil {
		return nil, fmt.Errorf("score: cannot query leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, len(stored))
	for i, r := range stored {
		entries[i] = LeaderboardEntry{
			Rank:             i + 1,
			PlayerName:       r.PlayerName,
			Score:            r.Score,
			ObstaclesAvoided: r.ObstaclesAvoided,
			CreatedAt:        r.CreatedAt,
		}
	}
	return entries, nil
}

// BestScore returns the highest stored score, or 0 when none exist.
func (s *Service) BestScore() (int, error) {
	best, err := s.store.BestScore()
	if err != nil {
		return 0, fmt.Errorf("score: cannot query best score: %w", err)
	}
	return best, nil
}
