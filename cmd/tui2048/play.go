package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P/Space          - Pause
  R/N              - New game
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Finished games are saved to the score history unless storage is disabled.

Examples:
  tui2048 play
  tui2048 play --seed 42
  tui2048 play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logOut, closeLog := openLogFile(settings.Log.File)
	defer closeLog()
	logger := newLogger(logOut, settings.Log.Level)
	logger.Info("starting", "config", settings.Source, "seed", settings.Seed)

	cfg := core.DefaultConfig()
	cfg.TickRate = settings.UI.TickRate
	cfg.Seed = settings.Seed

	// Get terminal size early for the first layout
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open score storage
	var saver tui.ResultSaver
	if settings.Storage.Enabled {
		store, err := storage.Open(settings.Storage.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("scores database unavailable", "path", settings.Storage.DBPath, "err", err)
			// Continue without storage - game still works
		} else {
			defer store.Close()
			saver = store
		}
	}

	g := game.New(logger)
	runErr := tui.Run(g, cfg, tui.Options{
		Saver:  saver,
		Logger: logger,
		UI:     settings.UI,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if best := g.State().BestScore; best > 0 {
		fmt.Printf("Best score this session: %d\n", best)
	}
}
