package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

type fakeHistory struct {
	top, recent []storage.Result
	stats       *storage.Stats
	err         error
	calls       []string
}

func (f *fakeHistory) TopResults(limit int) ([]storage.Result, error) {
	f.calls = append(f.calls, "top")
	return f.top, f.err
}

func (f *fakeHistory) RecentResults(limit int) ([]storage.Result, error) {
	f.calls = append(f.calls, "recent")
	return f.recent, f.err
}

func (f *fakeHistory) Stats() (*storage.Stats, error) {
	if f.stats == nil {
		return &storage.Stats{}, nil
	}
	return f.stats, nil
}

func sampleHistory() *fakeHistory {
	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	return &fakeHistory{
		top: []storage.Result{
			{ID: "a", Score: 4096, MaxTile: 512, Moves: 400, Duration: 3 * time.Minute, CreatedAt: at},
			{ID: "b", Score: 1024, MaxTile: 128, Moves: 150, Duration: 70 * time.Second, CreatedAt: at},
		},
		recent: []storage.Result{
			{ID: "b", Score: 1024, MaxTile: 128, Moves: 150, Duration: 70 * time.Second, CreatedAt: at},
		},
		stats: &storage.Stats{Games: 2, HighScore: 4096, AvgScore: 2560, BestTile: 512},
	}
}

func TestScoreboardShowsTopResults(t *testing.T) {
	h := sampleHistory()
	m := NewScoreboardModel(h, 100, 30)

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "4096", "1024", "games 2", "best 4096"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if len(h.calls) != 1 || h.calls[0] != "top" {
		t.Errorf("calls = %v, want [top]", h.calls)
	}
}

func TestScoreboardSwitchView(t *testing.T) {
	h := sampleHistory()
	m := NewScoreboardModel(h, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	view := m.View()
	if !strings.Contains(view, "RECENT GAMES") {
		t.Errorf("View() after tab missing RECENT GAMES:\n%s", view)
	}
	if len(m.results) != 1 {
		t.Errorf("recent view shows %d results, want 1", len(m.results))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewTop {
		t.Error("second tab did not return to top view")
	}
	if got := strings.Join(h.calls, ","); got != "top,recent,top" {
		t.Errorf("calls = %s, want top,recent,top", got)
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(&fakeHistory{}, 80, 24)
	if !strings.Contains(m.View(), "No games finished yet") {
		t.Errorf("empty View() = %q", m.View())
	}

	m = NewScoreboardModel(&fakeHistory{err: errors.New("locked")}, 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Errorf("error View() = %q", m.View())
	}

	m = NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No games finished yet") {
		t.Errorf("nil source View() = %q", m.View())
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(sampleHistory(), 80, 24)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned nil command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("View() after quit is not empty")
	}
}
