package game

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// StateType labels what the host should draw over the board.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateGameOver    StateType = "game_over"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot is an engine snapshot plus controller state.
type Snapshot struct {
	engine.Snapshot

	Tick  uint64
	State StateType
	Won   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.eng == nil {
		return Snapshot{State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := g.eng.Snapshot()
	return Snapshot{
		Snapshot: snap,
		Tick:     g.tick,
		State:    state,
		Won:      snap.MaxTile >= WinTile,
	}
}

// Result summarises one game for the score history.
type Result struct {
	Score    int
	MaxTile  int
	Moves    int
	Duration time.Duration
	Seed     int64
	Won      bool
}

// Result returns the summary of the current game. Duration runs up to now
// while the game is still in progress.
func (g *Game) Result() Result {
	if g.eng == nil {
		return Result{}
	}

	end := g.ended
	if end.IsZero() {
		end = g.now()
	}
	snap := g.eng.Snapshot()
	return Result{
		Score:    snap.Score,
		MaxTile:  snap.MaxTile,
		Moves:    snap.Moves,
		Duration: end.Sub(g.started),
		Seed:     g.seed,
		Won:      snap.MaxTile >= WinTile,
	}
}
