package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/walk-the-dog/internal/platform/tui"
	"github.com/vovakirdan/walk-the-dog/internal/runner"
	"github.com/vovakirdan/walk-the-dog/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

By default an interactive scoreboard is shown. Use --plain to print
a table instead, for scripts or non-interactive terminals.

Examples:
  walkdog scores
  walkdog scores --plain --limit 5
  walkdog scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs in the plain table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if clearErr := store.ClearRuns(runner.GameID); clearErr != nil {
			return fmt.Errorf("clearing runs: %w", clearErr)
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	title := runner.New().Title()
	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, runner.GameID, title, width, height)
	}

	return printScores(store, title)
}

func printScores(store *storage.Store, title string) error {
	runs, err := store.TopRuns(runner.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'walkdog play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Score", "Distance", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "-----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-10d  %s\n", i+1, r.Score, r.Distance, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.Stats(runner.GameID); statsErr == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.RunsCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}
