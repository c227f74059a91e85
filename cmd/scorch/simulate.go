package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scorch/internal/config"
	"github.com/vovakirdan/tui-scorch/internal/engine"
)

var (
	flagSimPlayers int
	flagSimTurns   int
	flagSimConfig  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autoplay match",
	Long: `Run a full match without a terminal UI: every tank fires with random
aim until one survives. Useful for checking physics settings and for
reproducing matches from a seed.

Examples:
  scorch simulate
  scorch simulate --players 8 --seed 42
  scorch simulate --max-turns 500`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimPlayers, "players", 0, "Number of tanks (2-8, overrides config)")
	simulateCmd.Flags().IntVar(&flagSimTurns, "max-turns", 1000, "Give up after this many turns")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom match config YAML")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "scorch-sim",
	})

	scorchCfg, err := config.Load(flagSimConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if flagSimPlayers != 0 {
		scorchCfg.Match.Players = flagSimPlayers
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	matchCfg := scorchCfg.ToMatchConfig(seed)

	match, err := engine.NewMatch(matchCfg)
	if err != nil {
		logger.Fatal("cannot create match", "error", err)
	}
	logger.Info("match started", "players", len(match.Tanks()), "seed", seed)

	// Random gunnery shares the match seed so a rerun replays shot for shot.
	gunner := rand.New(rand.NewSource(seed))
	dt := 1.0 / float64(flagFPS)

	for turn := 1; turn <= flagSimTurns; turn++ {
		firer, _ := match.Tank(match.CurrentPlayer())
		angle := gunner.Float64()*180 - 90
		power := 0.2 + gunner.Float64()*0.8

		if !match.Fire(angle, power) {
			logger.Error("fire rejected", "turn", turn, "player", firer.Name)
			break
		}

		ev := stepOut(match, dt)
		switch {
		case ev.Kind == engine.EventVictory:
			winner, _ := match.Tank(ev.Winner)
			scores := match.Scores()
			logger.Info("victory",
				"turn", turn,
				"winner", winner.Name,
				"score", fmt.Sprintf("%.2f", scores.Score(ev.Winner)),
				"kills", scores.Kills(ev.Winner),
				"shots", scores.Shots(ev.Winner),
			)
			return
		case ev.Victim >= 0:
			victim, _ := match.Tank(ev.Victim)
			logger.Info("tank destroyed",
				"turn", turn,
				"by", firer.Name,
				"victim", victim.Name,
				"wind", fmt.Sprintf("%.2f", match.Wind()),
			)
		default:
			logger.Debug("crater",
				"turn", turn,
				"player", firer.Name,
				"at", fmt.Sprintf("%.0f", ev.Center.X),
			)
		}
	}

	logger.Warn("no winner within turn limit", "turns", flagSimTurns)
}

// stepOut drives the in-flight shell to its terminal event.
func stepOut(match *engine.Match, dt float64) engine.Event {
	for {
		ev := match.Step(dt)
		if ev.Kind == engine.EventExplosion || ev.Kind == engine.EventVictory {
			return ev
		}
	}
}
