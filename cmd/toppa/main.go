// toppa is a timed 4x4 tile-merging puzzle for the terminal.
//
// Usage:
//
//	toppa play               - Play a match in this terminal
//	toppa serve              - Start SSH server for remote play
//	toppa scores             - Print the best logged results
//	toppa board              - Browse the result log interactively
//	toppa rules              - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.toppa/results.db)
//	--verbose       - Log debug details to stderr
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/toppa/internal/games/toppa"
	"github.com/vovakirdan/toppa/internal/registry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

// logger reports CLI warnings and errors on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "toppa"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "toppa",
	Short: "Toppa - a timed tile-merging puzzle in your terminal",
	Long: `Toppa is a 4x4 tile-merging puzzle against the clock.

Slide the board to merge equal tiles. Light tiles climb from 1 to 6 and
dark tiles from A to B; merging two top-tier tiles clears them, and a
pair of 6s adds 30 seconds to the clock.

Available commands:
  play     - Play a match in this terminal
  serve    - Start SSH server for remote play
  scores   - Print the best logged results
  board    - Browse the result log
  rules    - Print the effective rules

Examples:
  toppa play
  toppa play --config ./blitz.yaml
  toppa serve --ssh :2222
  toppa scores --recent`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.toppa/results.db", "Path to result database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(rulesCmd)
}

// loadRules reads the rules file at path (or the default search path) and
// returns a factory for games playing by those rules.
func loadRules(path string) (registry.Factory, error) {
	rules, err := toppa.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("rules loaded",
		"time_limit", rules.TimeLimit,
		"finish_delay", rules.FinishDelay,
		"spawn", rules.Spawn,
	)
	return func() registry.Game {
		return toppa.NewWithConfig(rules)
	}, nil
}
