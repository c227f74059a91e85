package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scorch/internal/config"
	"github.com/vovakirdan/tui-scorch/internal/core"
	"github.com/vovakirdan/tui-scorch/internal/platform/tui"
	"github.com/vovakirdan/tui-scorch/internal/storage"
)

var (
	flagConfig  string
	flagWeather string
	flagPlayers int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a hot-seat match in the terminal. Players share the keyboard
and take turns.

Controls:
  Left/Right or A/D  - Aim the barrel
  Up/Down or W/S     - Adjust power
  Space/Enter/F      - Fire
  R                  - Rematch (after victory)
  Q/Ctrl+C           - Quit

Weather options:
  calm    - No wind
  breeze  - Wind up to 5
  classic - Wind up to 10
  storm   - Wind up to 25

Examples:
  scorch play
  scorch play --players 4
  scorch play --weather storm
  scorch play --config ./my-match.yaml
  scorch play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	playCmd.Flags().StringVar(&flagWeather, "weather", "", "Weather preset: calm, breeze, classic, storm")
	playCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of tanks (2-8, overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load match settings
	scorchCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagWeather != "" {
		config.ApplyWeatherPreset(&scorchCfg, config.WeatherPreset(flagWeather))
	}
	if flagPlayers != 0 {
		scorchCfg.Match.Players = flagPlayers
	}

	matchCfg := scorchCfg.ToMatchConfig(flagSeed)
	if err := matchCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(matchCfg, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
