package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyrunner/internal/games/skyrunner"
	"github.com/vovakirdan/skyrunner/internal/platform/tui"
	"github.com/vovakirdan/skyrunner/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, ranked by score.

By default an interactive table is shown; --plain prints the top runs
instead, which is handy for scripts.

Examples:
  skyrunner scores
  skyrunner scores --plain --limit 5
  skyrunner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain-text table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(skyrunner.ID); err != nil {
			return err
		}
		fmt.Println("All runs cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, skyrunner.ID, "Sky Runner", width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(skyrunner.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieve runs: %w", err)
	}

	fmt.Println("High Scores - Sky Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyrunner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Peak", "Boards", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "----", "------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6.0f  %-6d  %-7s  %s\n",
			i+1, r.Score, r.PeakSpeed, r.BoardsCleared,
			fmt.Sprintf("%.1fs", r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	totals, err := store.Totals(skyrunner.ID)
	if err != nil {
		return fmt.Errorf("retrieve totals: %w", err)
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Top speed: %.0f  Boards cleared: %d\n",
		totals.Runs, totals.BestScore, totals.BestSpeed, totals.BoardsCleared)
	return nil
}
