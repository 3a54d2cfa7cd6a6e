package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/settings"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runner.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Schema should be queryable immediately.
	if _, err := store.TopResults(5); err != nil {
		t.Errorf("TopResults() on fresh database failed: %v", err)
	}
	if _, err := store.BestScore(); err != nil {
		t.Errorf("BestScore() on fresh database failed: %v", err)
	}
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deeply", "nested", "dir", "runner.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	store.Close()
}

func TestInsertResultComputesRank(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	insert := func(points int) int {
		t.Helper()
		id, rank, err := store.InsertResult(ctx, game.RunResult{PlayerName: "p", Score: points})
		if err != nil {
			t.Fatalf("InsertResult(%d) failed: %v", points, err)
		}
		if id == 0 {
			t.Fatalf("InsertResult(%d) returned zero ID", points)
		}
		return rank
	}

	if rank := insert(100); rank != 1 {
		t.Errorf("first result rank = %d, expected 1", rank)
	}
	if rank := insert(200); rank != 1 {
		t.Errorf("higher result rank = %d, expected 1", rank)
	}
	if rank := insert(150); rank != 2 {
		t.Errorf("middle result rank = %d, expected 2", rank)
	}
	if rank := insert(50); rank != 4 {
		t.Errorf("lowest result rank = %d, expected 4", rank)
	}
	// Equal to the current best: not strictly greater, so it shares rank 1.
	if rank := insert(200); rank != 1 {
		t.Errorf("tied-best result rank = %d, expected 1", rank)
	}
}

func TestTopResultsOrdering(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	scores := []int{30, 90, 60, 90, 10}
	for i, points := range scores {
		res := game.RunResult{
			PlayerName:       "player",
			Score:            points,
			ObstaclesAvoided: i,
			DurationSeconds:  i * 2,
		}
		if _, _, err := store.InsertResult(ctx, res); err != nil {
			t.Fatalf("InsertResult failed: %v", err)
		}
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	wantScores := []int{90, 90, 60, 30, 10}
	for i, r := range results {
		if r.Score != wantScores[i] {
			t.Errorf("result %d score = %d, expected %d", i, r.Score, wantScores[i])
		}
	}

	// The two 90s keep insertion order: the earlier row (ID) first.
	if results[0].ID >= results[1].ID {
		t.Errorf("tied scores out of insertion order: ID %d before %d", results[0].ID, results[1].ID)
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("created_at was not populated")
	}
}

func TestTopResultsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		if _, _, err := store.InsertResult(ctx, game.RunResult{PlayerName: "p", Score: i}); err != nil {
			t.Fatalf("InsertResult failed: %v", err)
		}
	}

	results, err := store.TopResults(5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("expected 5 results, got %d", len(results))
	}

	// Non-positive limit falls back to a sane default.
	results, err = store.TopResults(0)
	if err != nil {
		t.Fatalf("TopResults(0) failed: %v", err)
	}
	if len(results) != 10 {
		t.Errorf("default limit returned %d results, expected 10", len(results))
	}
}

func TestBestScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty database best = %d, expected 0", best)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, points := range []int{15, 75, 40} {
		if _, _, err := store.InsertResult(ctx, game.RunResult{PlayerName: "p", Score: points}); err != nil {
			t.Fatalf("InsertResult failed: %v", err)
		}
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 75 {
		t.Errorf("best = %d, expected 75", best)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	ps := settings.PlayerSettings{
		PlayerName:      "alice",
		DinoColor:       "#ff8800",
		BackgroundTheme: "night",
		SoundEnabled:    false,
		Difficulty:      "hard",
	}
	if err := store.SaveSettings(ps); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	loaded, err := store.LoadSettings("alice")
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadSettings() returned nil for a stored player")
	}
	if *loaded != ps {
		t.Errorf("loaded settings = %+v, expected %+v", *loaded, ps)
	}
}

func TestSettingsUpsert(t *testing.T) {
	store := openTestStore(t)

	ps := settings.PlayerSettings{
		PlayerName:      "bob",
		DinoColor:       "#22aa22",
		BackgroundTheme: "plain",
		SoundEnabled:    true,
		Difficulty:      "normal",
	}
	if err := store.SaveSettings(ps); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	ps.DinoColor = "#0033cc"
	ps.Difficulty = "easy"
	if err := store.SaveSettings(ps); err != nil {
		t.Fatalf("SaveSettings() upsert failed: %v", err)
	}

	loaded, err := store.LoadSettings("bob")
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if loaded.DinoColor != "#0033cc" || loaded.Difficulty != "easy" {
		t.Errorf("upsert did not replace values: %+v", loaded)
	}
}

func TestLoadSettingsMissingPlayer(t *testing.T) {
	store := openTestStore(t)

	loaded, err := store.LoadSettings("nobody")
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil for an unknown player, got %+v", loaded)
	}
}
