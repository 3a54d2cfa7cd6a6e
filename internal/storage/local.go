package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/settings"
)

// LocalState is the client-side fallback persisted when the database is
// unavailable or no player identity is set: last-known settings and the
// last-known personal best. It is display continuity only and never
// substitutes for an authoritative leaderboard rank.
type LocalState struct {
	PersonalBest int                      `yaml:"personal_best"`
	Settings     *settings.PlayerSettings `yaml:"settings,omitempty"`
}

// DefaultLocalPath returns the default location of the local state file.
func DefaultLocalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "local.yaml")
}

// LoadLocal reads the local state file. A missing file yields an empty
// state without error.
func LoadLocal(path string) (LocalState, error) {
	var st LocalState
	if path == "" {
		return st, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("storage: cannot read local state: %w", err)
	}

	if err := yaml.Unmarshal(data, &st); err != nil {
		return LocalState{}, fmt.Errorf("storage: cannot parse local state: %w", err)
	}
	return st, nil
}

// SaveLocal writes the local state file, creating parent directories.
func SaveLocal(path string, st LocalState) error {
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create local state directory: %w", err)
	}

	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("storage: cannot encode local state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("storage: cannot write local state: %w", err)
	}
	return nil
}
