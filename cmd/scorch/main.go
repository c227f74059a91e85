// scorch is a turn-based terminal artillery game: destructible terrain,
// drag and wind physics, and last-tank-standing duels for 2 to 8 players.
//
// Usage:
//
//	scorch play              - Play a match in the terminal
//	scorch simulate          - Run a headless autoplay match
//	scorch serve             - Start SSH server for remote play
//	scorch scores            - Show the leaderboards
//	scorch config            - Print the default match configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.scorch/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scorch",
	Short: "Scorch - Terminal artillery duels",
	Long: `Scorch is a terminal-based artillery game. Take turns lobbing shells
over randomly generated, fully destructible terrain while the wind
shifts between every shot. Last tank standing wins.

Available commands:
  play     - Play a match in the terminal
  simulate - Run a headless autoplay match
  serve    - Start SSH server for remote play
  scores   - View the leaderboards
  config   - Print the default match configuration

Examples:
  scorch play
  scorch play --players 4 --weather storm
  scorch serve --ssh :2222
  scorch scores --players 4`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scorch/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
