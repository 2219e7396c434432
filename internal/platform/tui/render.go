package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// renderBoard draws the grid of tiles.
func renderBoard(snap game.Snapshot, theme Theme, hl pop) string {
	rows := make([]string, len(snap.Board))
	for r, row := range snap.Board {
		tiles := make([]string, len(row))
		for c, v := range row {
			tiles[c] = theme.Tile(v, hl.active(r, c)).Render(tileLabel(v))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	}
	return theme.Board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func tileLabel(v int) string {
	if v == 0 {
		return "."
	}
	return strconv.Itoa(v)
}

// renderHUD draws the title and the score line.
func renderHUD(snap game.Snapshot, theme Theme, width int) string {
	title := lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Title.Render("2048"))

	field := func(label string, v int) string {
		return theme.HUDLabel.Render(label+" ") + theme.HUDValue.Render(strconv.Itoa(v))
	}
	scores := strings.Join([]string{
		field("Score", snap.Score),
		field("Best", snap.BestScore),
		field("Max", snap.MaxTile),
	}, "  ")

	return title + "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, scores)
}

// renderStatus draws the line under the board.
func renderStatus(snap game.Snapshot, theme Theme) string {
	switch snap.State {
	case game.StateGameOver:
		return theme.GameOver.Render(fmt.Sprintf("GAME OVER  score %d  press r", snap.Score))
	case game.StatePaused:
		return theme.Paused.Render("PAUSED  press p to resume")
	}
	if snap.Won {
		return theme.Win.Render("You made 2048! Keep going")
	}
	return theme.Help.Render("Join the numbers and get to the 2048 tile!")
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(w, h, minW, minH int) string {
	msg := fmt.Sprintf("Window too small\nneed %dx%d, have %dx%d\nPlease resize terminal", minW, minH, w, h)
	if w <= 0 || h <= 0 {
		return msg
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
}
