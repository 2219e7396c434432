package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresRecent bool
	flagScoresPlain  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Show the best (or most recent) finished games and overall stats.

In a terminal the history opens as an interactive table; use --plain or pipe
the output for a text listing.

Examples:
  tui2048 scores
  tui2048 scores --recent --limit 5 --plain
  tui2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole history")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent games instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a text listing instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := openHistory(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.Clear()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %d results.\n", n)
		return
	}

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		size := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			size.ScreenW, size.ScreenH = w, h
		}
		if err := tui.RunScoreboard(store, size.ScreenW, size.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) error {
	var (
		results []storage.Result
		err     error
		title   = "High Scores"
	)
	if flagScoresRecent {
		title = "Recent Games"
		results, err = store.RecentResults(flagScoresLimit)
	} else {
		results, err = store.TopResults(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tui2048 play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %-9s  %s\n", "Rank", "Score", "Tile", "Moves", "Time", "Source", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %-9s  %s\n", "----", "-----", "----", "-----", "----", "------", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-8s  %-9s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, r.Duration.Round(time.Second), r.Source,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Avg: %.0f  Best tile: %d\n",
		stats.Games, stats.Wins, stats.HighScore, stats.AvgScore, stats.BestTile)
	return nil
}
