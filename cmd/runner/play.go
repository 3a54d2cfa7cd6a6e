package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/score"
	"github.com/vovakirdan/tui-runner/internal/settings"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run in this terminal.

Controls:
  Space/Up/W - Jump (also starts a run)
  Enter      - Start a run
  P/Esc      - Pause / resume
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Slower scroll, sparser obstacles
  normal - The standard curve
  hard   - Faster scroll, denser obstacles

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (default: from settings)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	player := playerName()

	// Open storage. The game still runs without it; scores just stay local.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	session := tui.Session{
		PlayerName: player,
		Settings:   settings.Default(player),
		LocalPath:  storage.DefaultLocalPath(),
	}
	if store != nil {
		scores := score.NewService(store)
		session.Scores = scores
		session.Submitter = score.NewSubmitter(scores, newLogger())
		ps, psErr := settings.NewService(store).Get(player)
		if psErr == nil {
			session.Settings = ps
		}
	}

	// The flag wins over the stored preset.
	preset := session.Settings.Difficulty
	if flagDifficulty != "" {
		if !config.ValidPreset(flagDifficulty) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal or hard)\n", flagDifficulty)
			os.Exit(1)
		}
		preset = flagDifficulty
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(preset))

	session.Game = game.New(gameCfg)

	runErr := tui.Run(session, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
