package engine

import "fmt"

// Spawn probabilities for a new tile.
const (
	spawnValue     = 2
	spawnValueRare = 4
	spawnRareProb  = 0.10
)

// Engine owns one game's board and score. It is not safe for concurrent use;
// run one Engine per game and drive it from a single goroutine.
type Engine struct {
	size   int
	rng    RandSource
	strict bool

	board     Board
	score     int
	bestScore int
	moves     int
	lastSpawn *Cell
}

// Option configures an Engine.
type Option func(*Engine)

// WithSize sets the board side length. Values below 2 are ignored.
func WithSize(n int) Option {
	return func(e *Engine) {
		if n >= 2 {
			e.size = n
		}
	}
}

// WithRand injects the random source used by SpawnTile.
func WithRand(src RandSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = src
		}
	}
}

// WithSeed seeds a private math/rand generator. 0 means time-based.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = NewRand(seed)
	}
}

// WithInvariantChecks makes every mutation validate the board and panic on
// a violation. Intended for tests and debug builds.
func WithInvariantChecks() Option {
	return func(e *Engine) {
		e.strict = true
	}
}

// New creates an engine with an empty board. Call NewGame to place the
// opening tiles.
func New(opts ...Option) *Engine {
	e := &Engine{size: DefaultSize}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(0)
	}
	e.board = NewBoard(e.size)
	return e
}

// Reset clears the board and the score. BestScore is kept.
func (e *Engine) Reset() {
	e.board = NewBoard(e.size)
	e.score = 0
	e.moves = 0
	e.lastSpawn = nil
}

// NewGame resets the engine and spawns the two opening tiles.
func (e *Engine) NewGame() {
	e.Reset()
	e.SpawnTile()
	e.SpawnTile()
}

// SpawnTile places a 2 (90%) or 4 (10%) on a uniformly chosen empty cell.
// It is a no-op on a full board.
func (e *Engine) SpawnTile() {
	empty := e.board.EmptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := spawnValue
	if e.rng.Float64() < spawnRareProb {
		value = spawnValueRare
	}

	e.board.set(cell.Row, cell.Col, value)
	e.lastSpawn = &cell
	e.check()
}

// Move slides every line toward dir, merging equal tiles once per pass.
// It returns whether any cell changed. An invalid direction returns an
// error wrapping ErrInvalidArgument and leaves the state untouched.
func (e *Engine) Move(dir Direction) (bool, error) {
	next, gained, changed, err := Slide(e.board, dir)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	e.board = next
	e.score += gained
	if e.score > e.bestScore {
		e.bestScore = e.score
	}
	e.moves++
	e.lastSpawn = nil
	e.check()

	return true, nil
}

// IsTerminal reports whether no move can change the board.
func (e *Engine) IsTerminal() bool {
	return e.board.IsTerminal()
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// Score returns the current game score.
func (e *Engine) Score() int {
	return e.score
}

// BestScore returns the highest score seen by this engine.
func (e *Engine) BestScore() int {
	return e.bestScore
}

// Size returns the board side length.
func (e *Engine) Size() int {
	return e.size
}

// Check validates the current board.
func (e *Engine) Check() error {
	return e.board.Validate()
}

func (e *Engine) check() {
	if !e.strict {
		return
	}
	if err := e.board.Validate(); err != nil {
		panic(fmt.Sprintf("engine: %v\n%s", err, e.board))
	}
}
