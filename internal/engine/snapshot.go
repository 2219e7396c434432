package engine

// Snapshot is a read-only copy of the engine state for presentation.
type Snapshot struct {
	Board     [][]int
	Size      int
	Score     int
	BestScore int
	MaxTile   int
	Moves     int // Moves that changed the board since the last reset
	Terminal  bool
	LastSpawn *Cell // Most recent spawn, nil after a move until the next spawn
}

// Snapshot returns the current state. Mutating it does not affect the engine.
func (e *Engine) Snapshot() Snapshot {
	var spawn *Cell
	if e.lastSpawn != nil {
		c := *e.lastSpawn
		spawn = &c
	}

	return Snapshot{
		Board:     e.board.Rows(),
		Size:      e.size,
		Score:     e.score,
		BestScore: e.bestScore,
		MaxTile:   e.board.MaxTile(),
		Moves:     e.moves,
		Terminal:  e.board.IsTerminal(),
		LastSpawn: spawn,
	}
}
