// Package config provides YAML-based configuration loading for tui2048.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the full application configuration.
type Config struct {
	// Seed for tile spawns. 0 means time-based.
	Seed    int64         `yaml:"seed"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	// Source is the file the config was read from, or "embedded"/"default".
	Source string `yaml:"-"`
}

// UIConfig controls the terminal host.
type UIConfig struct {
	TickRate  int         `yaml:"tick_rate"`  // Ticks per second
	MinWidth  int         `yaml:"min_width"`  // Smallest usable terminal width
	MinHeight int         `yaml:"min_height"` // Smallest usable terminal height
	PopTicks  int         `yaml:"pop_ticks"`  // Ticks a spawned tile stays highlighted
	Theme     ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds the tile palette as "#rrggbb" colors.
type ThemeConfig struct {
	Tiles      map[int]string `yaml:"tiles"`
	Fallback   string         `yaml:"fallback"`     // Tiles without an entry
	Empty      string         `yaml:"empty"`        // Empty cell background
	Board      string         `yaml:"board"`        // Grid background
	DarkText   string         `yaml:"dark_text"`    // Text on light tiles
	LightText  string         `yaml:"light_text"`   // Text on dark tiles
	DarkTextTo int            `yaml:"dark_text_to"` // Largest tile drawn with DarkText
}

// StorageConfig controls the score history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file used while the TUI owns the terminal
}

// TickInterval returns the duration of one UI tick.
func (c UIConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// TileColor returns the background color for a tile value.
func (t ThemeConfig) TileColor(value int) string {
	if value == 0 {
		return t.Empty
	}
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	return t.Fallback
}

// TextColor returns the foreground color for a tile value.
func (t ThemeConfig) TextColor(value int) string {
	if value <= t.DarkTextTo {
		return t.DarkText
	}
	return t.LightText
}

// Validate checks the config for values the application cannot run with.
func (c Config) Validate() error {
	if c.UI.TickRate <= 0 || c.UI.TickRate > 240 {
		return fmt.Errorf("config: ui.tick_rate must be in 1..240, got %d", c.UI.TickRate)
	}
	if c.UI.MinWidth < 0 || c.UI.MinHeight < 0 {
		return fmt.Errorf("config: ui.min_width and ui.min_height must not be negative")
	}
	if c.UI.PopTicks < 0 {
		return fmt.Errorf("config: ui.pop_ticks must not be negative, got %d", c.UI.PopTicks)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Storage.Enabled && c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path is required when storage is enabled")
	}

	t := c.UI.Theme
	named := map[string]string{
		"fallback":   t.Fallback,
		"empty":      t.Empty,
		"board":      t.Board,
		"dark_text":  t.DarkText,
		"light_text": t.LightText,
	}
	for name, color := range named {
		if !isHexColor(color) {
			return fmt.Errorf("config: ui.theme.%s: invalid color %q", name, color)
		}
	}
	for value, color := range t.Tiles {
		if value < 2 || value&(value-1) != 0 {
			return fmt.Errorf("config: ui.theme.tiles: %d is not a tile value", value)
		}
		if !isHexColor(color) {
			return fmt.Errorf("config: ui.theme.tiles[%d]: invalid color %q", value, color)
		}
	}
	return nil
}

// Level names accepted by log.level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ParseLevel normalises a log level name.
func ParseLevel(s string) (string, error) {
	switch l := strings.ToLower(strings.TrimSpace(s)); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, nil
	case "warning":
		return LevelWarn, nil
	default:
		return "", fmt.Errorf("config: unknown log level %q", s)
	}
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
