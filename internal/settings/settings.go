// Package settings implements the per-player settings contract: a small
// validated record upserted by player identity, with defaults returned
// when no prior settings exist.
package settings

import (
	"fmt"
	"regexp"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/validate"
)

// PlayerSettings is the persisted per-player configuration.
type PlayerSettings struct {
	PlayerName      string `yaml:"player_name"`
	DinoColor       string `yaml:"dino_color"` // #rrggbb
	BackgroundTheme string `yaml:"background_theme"`
	SoundEnabled    bool   `yaml:"sound_enabled"`
	Difficulty      string `yaml:"difficulty"` // easy, normal, hard
}

// Themes is the fixed set of selectable background themes.
var Themes = []string{"plain", "desert", "night", "neon"}

// hexColor matches a #rrggbb color string.
var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Default returns the settings used when a player has none stored.
func Default(playerName string) PlayerSettings {
	return PlayerSettings{
		PlayerName:      playerName,
		DinoColor:       "#22aa22",
		BackgroundTheme: "plain",
		SoundEnabled:    true,
		Difficulty:      string(config.DifficultyNormal),
	}
}

// ValidTheme reports whether the theme is in the fixed set.
func ValidTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// Validate checks a settings record against the contract.
func Validate(s PlayerSettings) error {
	if s.PlayerName == "" {
		return validate.Failf("playerName", "must not be empty")
	}
	if !hexColor.MatchString(s.DinoColor) {
		return validate.Failf("dinoColor", "must be a #rrggbb hex color, got %q", s.DinoColor)
	}
	if !ValidTheme(s.BackgroundTheme) {
		return validate.Failf("backgroundTheme", "must be one of %v, got %q", Themes, s.BackgroundTheme)
	}
	if !config.ValidPreset(s.Difficulty) {
		return validate.Failf("difficulty", "must be one of easy, normal or hard, got %q", s.Difficulty)
	}
	return nil
}

// Store is the persistence contract for settings. LoadSettings returns
// nil without error when the player has no stored settings.
type Store interface {
	SaveSettings(s PlayerSettings) error
	LoadSettings(playerName string) (*PlayerSettings, error)
}

// Service validates and persists player settings.
type Service struct {
	store Store
}

// NewService creates a settings service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the player's settings, or defaults when none are stored.
// On storage failure it returns defaults alongside the error so callers
// can degrade silently.
func (s *Service) Get(playerName string) (PlayerSettings, error) {
	stored, err := s.store.LoadSettings(playerName)
	if err != nil {
		return Default(playerName), fmt.Errorf("settings: cannot load: %w", err)
	}
	if stored == nil {
		return Default(playerName), nil
	}
	return *stored, nil
}

// Save validates and upserts the settings, keyed by player identity.
// Saving the same record twice is a no-op (idempotent).
func (s *Service) Save(ps PlayerSettings) error {
	if err := Validate(ps); err != nil {
		return err
	}
	if err := s.store.SaveSettings(ps); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	return nil
}
