package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/toppa/internal/games/toppa"
	"github.com/vovakirdan/toppa/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print logged results",
	Long: `Display the best logged results, or the latest ones with --recent.

Examples:
  toppa scores
  toppa scores --limit 25
  toppa scores --recent
  toppa scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest results instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all logged results")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening result log: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(toppa.GameID); err != nil {
			return err
		}
		fmt.Println("Result log cleared.")
		return nil
	}

	var results []storage.Result
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Matches"
		results, err = store.RecentResults(toppa.GameID, flagScoresLimit)
	} else {
		results, err = store.TopResults(toppa.GameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Printf("%s - Toppa\n\n", heading)

	if len(results) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'toppa play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %10s  %6s  %4s  %s\n", "Rank", "Score", "Merges", "Tile", "Date")
	fmt.Printf("  %-4s  %10s  %6s  %4s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range results {
		tile := "-"
		if r.HighestTile > 0 {
			tile = fmt.Sprint(r.HighestTile)
		}
		fmt.Printf("  %-4d  %10s  %6d  %4s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Merges, tile,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats(toppa.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s over %s matches (%s merges)\n",
			humanize.Comma(int64(st.BestScore)),
			humanize.Comma(int64(st.Games)),
			humanize.Comma(int64(st.TotalMerges)))
	}
	return nil
}
