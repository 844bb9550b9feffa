package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/toppa/internal/core"
	"github.com/vovakirdan/toppa/internal/platform/tui"
	"github.com/vovakirdan/toppa/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start Toppa in this terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Space/Enter      - Start the countdown
  R                - Retry from the result screen
  Esc/B            - Scoreboard (outside a match)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Rules are read from --config, then ~/.toppa/configs/toppa.yaml, then
./configs/toppa.yaml, falling back to the built-in defaults.

Examples:
  toppa play
  toppa play --seed 42
  toppa play --config ./blitz.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	newGame, err := loadRules(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", termErr)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open result log, results will not be saved", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(newGame(), store, cfg, nil)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
