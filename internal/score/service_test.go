package score_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/score"
	"github.com/vovakirdan/tui-runner/internal/storage"
	"github.com/vovakirdan/tui-runner/internal/validate"
)

func newService(t *testing.T) *score.Service {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return score.NewService(store)
}

func result(name string, points int) game.RunResult {
	return game.RunResult{
		PlayerName:       name,
		Score:            points,
		ObstaclesAvoided: points / 10,
		DurationSeconds:  points / 5,
	}
}

func TestSubmitRankCorrectness(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, points := range []int{100, 200, 300} {
		if _, err := svc.Submit(ctx, result("seed", points)); err != nil {
			t.Fatalf("Submit(%d) failed: %v", points, err)
		}
	}

	tests := []struct {
		points   int
		wantRank int
	}{
		{250, 2},
		{350, 1},
		{50, 5}, // 100, 200, 250, 300, 350 already stored
	}

	for _, tc := range tests {
		receipt, err := svc.Submit(ctx, result("probe", tc.points))
		if err != nil {
			t.Fatalf("Submit(%d) failed: %v", tc.points, err)
		}
		if receipt.Rank != tc.wantRank {
			t.Errorf("Submit(%d) rank = %d, expected %d", tc.points, receipt.Rank, tc.wantRank)
		}
		if receipt.RecordID == 0 {
			t.Errorf("Submit(%d) returned zero record ID", tc.points)
		}
	}
}

func TestSubmitRankAgainstFixedSet(t *testing.T) {
	// Each case runs against exactly {100, 200, 300} already stored.
	cases := []struct {
		points   int
		wantRank int
	}{
		{250, 2},
		{350, 1},
		{50, 4},
	}

	for _, tc := range cases {
		svc := newService(t)
		ctx := context.Background()
		for _, points := range []int{100, 200, 300} {
			if _, err := svc.Submit(ctx, result("seed", points)); err != nil {
				t.Fatalf("Submit(%d) failed: %v", points, err)
			}
		}

		receipt, err := svc.Submit(ctx, result("probe", tc.points))
		if err != nil {
			t.Fatalf("Submit(%d) failed: %v", tc.points, err)
		}
		if receipt.Rank != tc.wantRank {
			t.Errorf("Submit(%d) against {100,200,300}: rank = %d, expected %d", tc.points, receipt.Rank, tc.wantRank)
		}
	}
}

func TestSubmitNewTopRank(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, result("a", 100))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !first.IsNewTopRank {
		t.Error("first submission should be the top rank")
	}

	second, err := svc.Submit(ctx, result("b", 50))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if second.IsNewTopRank {
		t.Error("lower score must not report a new top rank")
	}
	if second.Rank != 2 {
		t.Errorf("rank = %d, expected 2", second.Rank)
	}
}

func TestSubmitValidationRejection(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	bad := []game.RunResult{
		{PlayerName: "", Score: 10},
		{PlayerName: "X", Score: -5},
		{PlayerName: "this name is far too long for us", Score: 10},
		{PlayerName: "X", Score: 10, ObstaclesAvoided: -1},
		{PlayerName: "X", Score: 10, DurationSeconds: -1},
	}

	for _, res := range bad {
		_, err := svc.Submit(ctx, res)
		if err == nil {
			t.Errorf("Submit(%+v) should have been rejected", res)
			continue
		}
		if !validate.IsValidation(err) {
			t.Errorf("Submit(%+v) error should be a validation failure, got %v", res, err)
		}
	}

	// No persistence side effects
	entries, err := svc.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected submissions were persisted: %d entries", len(entries))
	}
}

func TestLeaderboardOrderingAndPositions(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, points := range []int{120, 80, 200, 150} {
		if _, err := svc.Submit(ctx, result("p", points)); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	entries, err := svc.Leaderboard(3)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	wantScores := []int{200, 150, 120}
	for i, e := range entries {
		if e.Score != wantScores[i] {
			t.Errorf("entry %d score = %d, expected %d", i, e.Score, wantScores[i])
		}
		if e.Rank != i+1 {
			t.Errorf("entry %d rank = %d, expected %d", i, e.Rank, i+1)
		}
	}
}

func TestLeaderboardTiesKeepInsertionOrder(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, result("first", 100)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(ctx, result("second", 100)); err != nil {
		t.Fatal(err)
	}

	entries, err := svc.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].PlayerName != "first" || entries[1].PlayerName != "second" {
		t.Errorf("tied scores reordered: %q before %q", entries[0].PlayerName, entries[1].PlayerName)
	}
}

func TestRankStableAfterLaterSubmissions(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	receipt, err := svc.Submit(ctx, result("early", 100))
	if err != nil {
		t.Fatal(err)
	}
	if receipt.Rank != 1 {
		t.Fatalf("initial rank = %d, expected 1", receipt.Rank)
	}

	// A later, higher submission gets rank 1 now; the earlier receipt's
	// rank value is already returned and unaffected.
	later, err := svc.Submit(ctx, result("late", 500))
	if err != nil {
		t.Fatal(err)
	}
	if later.Rank != 1 {
		t.Errorf("later rank = %d, expected 1", later.Rank)
	}

	// Future queries reflect the updated standings.
	entries, err := svc.Leaderboard(10)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].PlayerName != "late" || entries[1].PlayerName != "early" {
		t.Error("leaderboard does not reflect the new standings")
	}
}

func TestLeaderboardDefaultLimit(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		if _, err := svc.Submit(ctx, result("p", i*10)); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := svc.Leaderboard(0)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != score.DefaultLeaderboardLimit {
		t.Errorf("default limit returned %d entries, expected %d", len(entries), score.DefaultLeaderboardLimit)
	}
}

func TestBestScore(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	best, err := svc.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty best score = %d, expected 0", best)
	}

	for _, points := range []int{40, 90, 60} {
		if _, err := svc.Submit(ctx, result("p", points)); err != nil {
			t.Fatal(err)
		}
	}

	best, err = svc.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 90 {
		t.Errorf("best score = %d, expected 90", best)
	}
}
