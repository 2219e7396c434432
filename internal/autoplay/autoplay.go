// Package autoplay plays games without a terminal, choosing each move with
// a Strategy. It drives the engine through the same Move, SpawnTile,
// IsTerminal sequence as the interactive game.
package autoplay

import (
	"context"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Strategy picks the next direction for a board.
type Strategy interface {
	Name() string
	Next(b engine.Board) engine.Direction
}

// Random picks uniformly among the directions that change the board.
type Random struct {
	rng engine.RandSource
}

// NewRandom returns a Random strategy drawing from rng.
func NewRandom(rng engine.RandSource) *Random {
	return &Random{rng: rng}
}

// Name implements Strategy.
func (r *Random) Name() string { return "random" }

// Next implements Strategy.
func (r *Random) Next(b engine.Board) engine.Direction {
	var legal []engine.Direction
	for _, dir := range engine.Directions {
		if _, _, changed, _ := engine.Slide(b, dir); changed {
			legal = append(legal, dir)
		}
	}
	if len(legal) == 0 {
		return engine.DirLeft
	}
	return legal[r.rng.Intn(len(legal))]
}

// greedyOrder breaks ties; it keeps large tiles in the bottom-left corner.
var greedyOrder = [...]engine.Direction{engine.DirLeft, engine.DirDown, engine.DirRight, engine.DirUp}

// Greedy looks one move ahead and takes the direction with the highest
// merge score, then the most empty cells.
type Greedy struct{}

// Name implements Strategy.
func (Greedy) Name() string { return "greedy" }

// Next implements Strategy.
func (Greedy) Next(b engine.Board) engine.Direction {
	best := greedyOrder[0]
	bestScore, bestEmpty := -1, -1
	for _, dir := range greedyOrder {
		next, gained, changed, err := engine.Slide(b, dir)
		if err != nil || !changed {
			continue
		}
		empty := len(next.EmptyCells())
		if gained > bestScore || (gained == bestScore && empty > bestEmpty) {
			best, bestScore, bestEmpty = dir, gained, empty
		}
	}
	return best
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string, rng engine.RandSource) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return NewRandom(rng), nil
	case "greedy", "":
		return Greedy{}, nil
	default:
		return nil, fmt.Errorf("autoplay: unknown strategy %q: %w", name, engine.ErrInvalidArgument)
	}
}

// Summary describes the end of an autoplayed game.
type Summary struct {
	Strategy  string
	Score     int
	BestScore int
	MaxTile   int
	Moves     int
	Terminal  bool
	Board     engine.Board
}

// Run starts a new game on eng and plays until it is terminal, maxMoves
// moves were made (0 means no limit) or ctx is done. On cancellation the
// summary so far is returned along with ctx.Err().
func Run(ctx context.Context, eng *engine.Engine, s Strategy, maxMoves int) (Summary, error) {
	eng.NewGame()

	moves := 0
	for maxMoves <= 0 || moves < maxMoves {
		if err := ctx.Err(); err != nil {
			return summarize(eng, s, moves), err
		}
		if eng.IsTerminal() {
			break
		}

		changed, err := eng.Move(s.Next(eng.Board()))
		if err != nil {
			return summarize(eng, s, moves), err
		}
		if !changed {
			// The strategy picked a dead direction; take the first live one.
			for _, dir := range engine.Directions {
				if changed, _ = eng.Move(dir); changed {
					break
				}
			}
		}
		if !changed {
			break
		}

		eng.SpawnTile()
		moves++
	}

	return summarize(eng, s, moves), nil
}

func summarize(eng *engine.Engine, s Strategy, moves int) Summary {
	b := eng.Board()
	return Summary{
		Strategy:  s.Name(),
		Score:     eng.Score(),
		BestScore: eng.BestScore(),
		MaxTile:   b.MaxTile(),
		Moves:     moves,
		Terminal:  eng.IsTerminal(),
		Board:     b,
	}
}
