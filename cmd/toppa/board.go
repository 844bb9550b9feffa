package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/toppa/internal/games/toppa"
	"github.com/vovakirdan/toppa/internal/platform/tui"
	"github.com/vovakirdan/toppa/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the result log",
	Long: `Open an interactive scoreboard of logged matches.

Tab switches between the best and the latest results.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening result log: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunScoreboard(store, toppa.GameID, "Toppa", width, height)
}
