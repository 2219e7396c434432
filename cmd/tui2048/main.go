// tui2048 is the sliding-tile number puzzle for the terminal.
//
// Usage:
//
//	tui2048                  - Play (same as "tui2048 play")
//	tui2048 play             - Play in the terminal
//	tui2048 scores           - Show the score history
//	tui2048 autoplay         - Let a strategy play headless games
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tui2048/config.yaml, ./configs/tui2048.yaml)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.tui2048/scores.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// errHistoryDisabled is returned when a command needs the score history but
// storage is turned off.
var errHistoryDisabled = errors.New("score history is disabled (set storage.enabled or --db)")

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// settings is filled by the root PersistentPreRunE before any command runs.
	settings config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 - slide and merge numbered tiles in your terminal",
	Long: `Slide the tiles with the arrow keys. Equal tiles that touch merge into
their sum. A new tile appears after every move. The game ends when no move
can change the board.

Available commands:
  play      - Play in the terminal (default)
  scores    - Show the score history
  autoplay  - Let a strategy play headless games

Examples:
  tui2048
  tui2048 play --seed 42
  tui2048 scores --limit 20
  tui2048 autoplay --games 10 --strategy greedy`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
}

// loadSettings resolves the config: file, then .env and environment, then flags.
func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
		cfg.Storage.Enabled = flagDBPath != ""
	}
	if flags.Changed("log-level") {
		level, err := config.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	return nil
}

// newLogger builds the application logger at the configured level.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tui2048",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLogFile opens the log file used while the TUI owns the terminal.
// Logging is discarded when the file cannot be opened.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	path = config.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// openHistory opens the score database named by cfg.
func openHistory(cfg config.Config) (*storage.Store, error) {
	if !cfg.Storage.Enabled {
		return nil, errHistoryDisabled
	}
	return storage.Open(cfg.Storage.DBPath)
}
