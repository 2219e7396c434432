package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Tile cell size in terminal cells.
const (
	tileWidth  = 6
	tileHeight = 3
)

// Theme contains the visual styles for the game screen.
type Theme struct {
	palette config.ThemeConfig

	Board lipgloss.Style

	// HUD styles
	Title    lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style

	// Status line styles
	Win      lipgloss.Style
	Paused   lipgloss.Style
	GameOver lipgloss.Style
	Help     lipgloss.Style
}

// NewTheme builds the styles from a configured palette.
func NewTheme(palette config.ThemeConfig) Theme {
	return Theme{
		palette: palette,

		Board: lipgloss.NewStyle().
			Background(lipgloss.Color(palette.Board)).
			Padding(1, 1),

		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Tiles[2048])),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Bold(true),

		Win:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Tiles[2048])),
		Paused:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		GameOver: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Tile returns the style for one tile. Popping tiles are drawn reversed.
func (t Theme) Tile(value int, popping bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(t.palette.TileColor(value))).
		Foreground(lipgloss.Color(t.palette.TextColor(value)))
	if value != 0 {
		s = s.Bold(true)
	}
	if popping {
		s = s.Reverse(true)
	}
	return s
}
