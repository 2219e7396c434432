package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/autoplay"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagAutoGames    int
	flagAutoStrategy string
	flagAutoSave     bool
	flagAutoMaxMoves int
	flagAutoQuiet    bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let a strategy play headless games",
	Long: `Play games without the terminal UI and print each final board.

Strategies:
  greedy - one move of lookahead, best merge score then most empty cells
  random - any move that changes the board

Examples:
  tui2048 autoplay
  tui2048 autoplay --games 20 --strategy random --quiet
  tui2048 autoplay --seed 7 --save`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagAutoGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().StringVar(&flagAutoStrategy, "strategy", "greedy", "Strategy: greedy or random")
	autoplayCmd.Flags().BoolVar(&flagAutoSave, "save", false, "Save results to the score history")
	autoplayCmd.Flags().IntVar(&flagAutoMaxMoves, "max-moves", 0, "Stop a game after this many moves (0 = no limit)")
	autoplayCmd.Flags().BoolVar(&flagAutoQuiet, "quiet", false, "Only print the result lines")
}

func runAutoplay(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, settings.Log.Level)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	strategy, err := autoplay.ParseStrategy(flagAutoStrategy, engine.NewRand(settings.Seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagAutoSave {
		store, err = openHistory(settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	eng := engine.New(engine.WithSeed(settings.Seed))
	wins := 0
	for i, n := 0, max(flagAutoGames, 1); i < n; i++ {
		start := time.Now()
		sum, err := autoplay.Run(ctx, eng, strategy, flagAutoMaxMoves)
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted", "game", i+1)
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		won := sum.MaxTile >= game.WinTile
		if won {
			wins++
		}

		if !flagAutoQuiet {
			fmt.Println(sum.Board)
		}
		fmt.Printf("game %d: score %d  max tile %d  moves %d  terminal %v\n",
			i+1, sum.Score, sum.MaxTile, sum.Moves, sum.Terminal)

		if store != nil {
			id, err := store.SaveResult(storage.Result{
				Score:    sum.Score,
				MaxTile:  sum.MaxTile,
				Moves:    sum.Moves,
				Duration: time.Since(start),
				Seed:     settings.Seed,
				Won:      won,
				Source:   storage.SourceAutoplay,
			})
			if err != nil {
				logger.Warn("cannot save result", "err", err)
			} else {
				logger.Debug("result saved", "id", id)
			}
		}
	}

	fmt.Printf("strategy %s: best %d  wins %d\n", strategy.Name(), eng.BestScore(), wins)
}
