// runner is a terminal side-scrolling runner: jump over obstacles, survive
// as long as you can, and climb the shared leaderboard.
//
// Usage:
//
//	runner play              - Play locally
//	runner scores            - Show the leaderboard
//	runner settings          - Show or change player settings
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.runner/results.db)
//	--player <name>   - Player name for scores and settings
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/score"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagPlayer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Terminal runner - jump obstacles, chase the leaderboard",
	Long: `Runner is a terminal side-scroller: your character runs forward at
ever-increasing speed and you jump over the obstacles in its path.
Finished runs are ranked on a shared leaderboard.

Available commands:
  play     - Play locally in this terminal
  scores   - View the leaderboard
  settings - Show or change your player settings
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner scores --limit 20
  runner settings show
  runner serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name (default: OS username)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// playerName resolves the player identity: the --player flag, then the OS
// username, then a generic fallback. Truncated to the submission limit.
func playerName() string {
	name := flagPlayer
	if name == "" {
		if u, err := user.Current(); err == nil && u.Username != "" {
			name = u.Username
		} else {
			name = "player"
		}
	}
	if len(name) > score.MaxPlayerNameLen {
		name = name[:score.MaxPlayerNameLen]
	}
	return name
}

// newLogger writes to a session log file so log lines never corrupt the
// alternate-screen TUI. Falls back to a silent logger.
func newLogger() *log.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard)
	}

	dir := filepath.Join(home, ".runner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard)
	}

	f, err := os.OpenFile(filepath.Join(dir, "runner.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	return logger
}
