package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/settings"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagColor string
	flagTheme string
	flagSound string
	flagLevel string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change player settings",
	Long: `Show or change the current player's settings.

Settings are keyed by player name (see the global --player flag) and
stored in the results database, so they follow you across sessions.

Examples:
  runner settings show
  runner settings set --color "#ff8800"
  runner settings set --theme night --difficulty hard
  runner settings set --sound off`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current player's settings",
	Run:   runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the current player's settings",
	Run:   runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().StringVar(&flagColor, "color", "", "Dino color as #rrggbb hex")
	settingsSetCmd.Flags().StringVar(&flagTheme, "theme", "", "Background theme: "+strings.Join(settings.Themes, ", "))
	settingsSetCmd.Flags().StringVar(&flagSound, "sound", "", "Sound effects: on or off")
	settingsSetCmd.Flags().StringVar(&flagLevel, "difficulty", "", "Difficulty preset: easy, normal, hard")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func openSettingsService() (*settings.Service, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	return settings.NewService(store), func() { store.Close() }
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	svc, closeStore := openSettingsService()
	defer closeStore()

	player := playerName()
	ps, err := svc.Get(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using defaults: %v\n", err)
	}

	fmt.Printf("Settings for %s\n", player)
	fmt.Println()
	fmt.Printf("  %-12s %s\n", "Color:", ps.DinoColor)
	fmt.Printf("  %-12s %s\n", "Theme:", ps.BackgroundTheme)
	fmt.Printf("  %-12s %s\n", "Sound:", onOff(ps.SoundEnabled))
	fmt.Printf("  %-12s %s\n", "Difficulty:", ps.Difficulty)
}

func runSettingsSet(cmd *cobra.Command, _ []string) {
	if flagColor == "" && flagTheme == "" && flagSound == "" && flagLevel == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to change (use --color, --theme, --sound or --difficulty)")
		os.Exit(1)
	}

	svc, closeStore := openSettingsService()
	defer closeStore()

	player := playerName()

	// Start from what's stored (or defaults) and apply only the given flags.
	ps, err := svc.Get(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: starting from defaults: %v\n", err)
	}

	if flagColor != "" {
		ps.DinoColor = flagColor
	}
	if flagTheme != "" {
		ps.BackgroundTheme = flagTheme
	}
	if flagSound != "" {
		enabled, parseErr := parseOnOff(flagSound)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		ps.SoundEnabled = enabled
	}
	if flagLevel != "" {
		ps.Difficulty = flagLevel
	}

	if err := svc.Save(ps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Settings saved for %s\n", player)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return false, fmt.Errorf("invalid sound value %q (use on or off)", s)
}
