package config

import (
	_ "embed"
)

//go:embed defaults/tui2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It mirrors the embedded YAML
// and is used when no file can be parsed.
func Default() Config {
	return Config{
		UI: UIConfig{
			TickRate:  30,
			MinWidth:  30,
			MinHeight: 18,
			PopTicks:  6,
			Theme:     DefaultTheme(),
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.tui2048/scores.db",
		},
		Log: LogConfig{
			Level: LevelInfo,
			File:  "~/.tui2048/tui2048.log",
		},
		Source: "default",
	}
}

// DefaultTheme returns the classic tile palette.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Tiles: map[int]string{
			2:    "#eee4da",
			4:    "#ede0c8",
			8:    "#f2b179",
			16:   "#f59563",
			32:   "#f67c5f",
			64:   "#f65e3b",
			128:  "#edcf72",
			256:  "#edcc61",
			512:  "#edc850",
			1024: "#edc53f",
			2048: "#edc22e",
			4096: "#3e3933",
		},
		Fallback:   "#3c3a32",
		Empty:      "#cdc1b4",
		Board:      "#bbada0",
		DarkText:   "#776e65",
		LightText:  "#f9f6f2",
		DarkTextTo: 4,
	}
}
