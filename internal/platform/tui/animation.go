package tui

import "github.com/vovakirdan/tui-2048/internal/engine"

// pop highlights a freshly spawned tile for a few ticks.
type pop struct {
	cell  engine.Cell
	ticks int
}

// start highlights cell for duration ticks. A nil cell or zero duration
// clears the highlight.
func (p *pop) start(cell *engine.Cell, duration int) {
	if cell == nil || duration <= 0 {
		p.ticks = 0
		return
	}
	p.cell = *cell
	p.ticks = duration
}

// step advances the highlight by one tick.
func (p *pop) step() {
	if p.ticks > 0 {
		p.ticks--
	}
}

// active reports whether row, col is currently highlighted.
func (p pop) active(row, col int) bool {
	return p.ticks > 0 && p.cell.Row == row && p.cell.Col == col
}
