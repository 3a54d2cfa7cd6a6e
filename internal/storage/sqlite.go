// Package storage provides SQLite-based persistence for run results and
// player settings. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/score"
	"github.com/vovakirdan/tui-runner/internal/settings"
)

// Store manages the SQLite database connection. It is handed to the
// score and settings services at construction; nothing reaches it
// through global state.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			obstacles_avoided INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			peak_speed REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC, id ASC);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player_name);

		CREATE TABLE IF NOT EXISTS player_settings (
			player_name TEXT PRIMARY KEY,
			dino_color TEXT NOT NULL,
			background_theme TEXT NOT NULL,
			sound_enabled INTEGER NOT NULL DEFAULT 1,
			difficulty TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InsertResult persists a run result and computes its rank in the same
// transaction: 1 + the number of previously stored scores strictly
// greater than this one. The transaction serializes the count with the
// write, so no concurrent submission can land between them.
func (s *Store) InsertResult(ctx context.Context, res game.RunResult) (int64, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	result, err := tx.ExecContext(ctx,
		`INSERT INTO results (player_name, score, obstacles_avoided, duration_secs, peak_speed)
		 VALUES (?, ?, ?, ?, ?)`,
		res.PlayerName, res.Score, res.ObstaclesAvoided, res.DurationSeconds, res.PeakSpeed,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	// The new row's own score is not strictly greater than itself, so
	// counting after the insert still excludes it.
	var greater int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM results WHERE score > ?", res.Score,
	).Scan(&greater)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot compute rank: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("storage: cannot commit result: %w", err)
	}

	return id, greater + 1, nil
}

// TopResults retrieves the top N results ordered by score descending.
// Equal scores keep insertion order.
func (s *Store) TopResults(limit int) ([]score.StoredResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player_name, score, obstacles_avoided, duration_secs, created_at
		 FROM results
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []score.StoredResult
	for rows.Next() {
		var e score.StoredResult
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Score, &e.ObstaclesAvoided, &e.DurationSeconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest stored score, or 0 if no results exist.
func (s *Store) BestScore() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// SaveSettings upserts a settings record keyed by player name.
func (s *Store) SaveSettings(ps settings.PlayerSettings) error {
	_, err := s.db.Exec(
		`INSERT INTO player_settings (player_name, dino_color, background_theme, sound_enabled, difficulty, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player_name) DO UPDATE SET
			dino_color = excluded.dino_color,
			background_theme = excluded.background_theme,
			sound_enabled = excluded.sound_enabled,
			difficulty = excluded.difficulty,
			updated_at = CURRENT_TIMESTAMP`,
		ps.PlayerName, ps.DinoColor, ps.BackgroundTheme, boolToInt(ps.SoundEnabled), ps.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// LoadSettings retrieves a player's settings, or nil if none are stored.
func (s *Store) LoadSettings(playerName string) (*settings.PlayerSettings, error) {
	var ps settings.PlayerSettings
	var sound int

	err := s.db.QueryRow(
		`SELECT player_name, dino_color, background_theme, sound_enabled, difficulty
		 FROM player_settings
		 WHERE player_name = ?`,
		playerName,
	).Scan(&ps.PlayerName, &ps.DinoColor, &ps.BackgroundTheme, &sound, &ps.Difficulty)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load settings: %w", err)
	}

	ps.SoundEnabled = sound != 0
	return &ps, nil
}

// parseTimestamp handles both time.Time and string datetime values.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compile-time checks that Store satisfies the service contracts.
var (
	_ score.ResultStore = (*Store)(nil)
	_ settings.Store    = (*Store)(nil)
)
