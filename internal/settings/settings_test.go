package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/settings"
	"github.com/vovakirdan/tui-runner/internal/storage"
	"github.com/vovakirdan/tui-runner/internal/validate"
)

func newService(t *testing.T) *settings.Service {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return settings.NewService(store)
}

func TestValidate(t *testing.T) {
	valid := settings.PlayerSettings{
		PlayerName:      "dave",
		DinoColor:       "#AbCdEf",
		BackgroundTheme: "neon",
		SoundEnabled:    true,
		Difficulty:      "easy",
	}
	if err := settings.Validate(valid); err != nil {
		t.Errorf("Validate(%+v) failed: %v", valid, err)
	}

	tests := []struct {
		name   string
		mutate func(*settings.PlayerSettings)
	}{
		{"empty player name", func(s *settings.PlayerSettings) { s.PlayerName = "" }},
		{"missing hash prefix", func(s *settings.PlayerSettings) { s.DinoColor = "22aa22" }},
		{"short hex", func(s *settings.PlayerSettings) { s.DinoColor = "#abc" }},
		{"non-hex digits", func(s *settings.PlayerSettings) { s.DinoColor = "#gggggg" }},
		{"unknown theme", func(s *settings.PlayerSettings) { s.BackgroundTheme = "lava" }},
		{"unknown difficulty", func(s *settings.PlayerSettings) { s.Difficulty = "nightmare" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)
			err := settings.Validate(s)
			if err == nil {
				t.Fatalf("Validate(%+v) should have failed", s)
			}
			if !validate.IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestGetReturnsDefaultsWhenAbsent(t *testing.T) {
	svc := newService(t)

	got, err := svc.Get("newcomer")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	want := settings.Default("newcomer")
	if got != want {
		t.Errorf("Get() = %+v, expected defaults %+v", got, want)
	}
}

func TestSaveThenGetRoundTrip(t *testing.T) {
	svc := newService(t)

	ps := settings.PlayerSettings{
		PlayerName:      "erin",
		DinoColor:       "#112233",
		BackgroundTheme: "desert",
		SoundEnabled:    false,
		Difficulty:      "hard",
	}
	if err := svc.Save(ps); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := svc.Get("erin")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != ps {
		t.Errorf("Get() = %+v, expected %+v", got, ps)
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	svc := newService(t)

	ps := settings.Default("frank")
	if err := svc.Save(ps); err != nil {
		t.Fatalf("first Save() failed: %v", err)
	}
	if err := svc.Save(ps); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	got, err := svc.Get("frank")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != ps {
		t.Errorf("Get() = %+v, expected %+v", got, ps)
	}
}

func TestSaveRejectsInvalidSettings(t *testing.T) {
	svc := newService(t)

	ps := settings.Default("grace")
	ps.DinoColor = "green"
	if err := svc.Save(ps); err == nil {
		t.Fatal("Save() should have rejected an invalid color")
	}

	// Rejection leaves nothing behind: Get still returns defaults.
	got, err := svc.Get("grace")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != settings.Default("grace") {
		t.Errorf("rejected save was persisted: %+v", got)
	}
}

func TestDefaultSettings(t *testing.T) {
	d := settings.Default("heidi")
	if d.PlayerName != "heidi" {
		t.Errorf("default player name = %q", d.PlayerName)
	}
	if err := settings.Validate(d); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}
	if !d.SoundEnabled {
		t.Error("sound should default to enabled")
	}
}
