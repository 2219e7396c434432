// Package game drives one board engine from per-tick input frames. It is the
// glue between the terminal host and the engine: the host never touches the
// board directly.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// WinTile is the tile value that marks a game as won. Play continues past it.
const WinTile = 2048

// Default minimum terminal size for a 4x4 board plus HUD and help line.
const (
	DefaultMinWidth  = 30
	DefaultMinHeight = 18
)

// Game wraps a single engine for the whole process so the best score
// survives restarts.
type Game struct {
	log        *log.Logger
	engineOpts []engine.Option
	eng        *engine.Engine
	now        func() time.Time

	seed    int64
	tick    uint64
	started time.Time
	ended   time.Time

	screenW, screenH int
	minW, minH       int

	gameOver bool
	paused   bool
	tooSmall bool
	wonAt    int // move count when WinTile first appeared, 0 if never
}

// New creates a controller. The engine is built on the first Reset so that
// the runtime seed can be applied; extra engine options are passed through.
func New(logger *log.Logger, opts ...engine.Option) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		log:        logger,
		engineOpts: opts,
		now:        time.Now,
		minW:       DefaultMinWidth,
		minH:       DefaultMinHeight,
	}
}

// SetMinSize overrides the smallest terminal the game will run in.
func (g *Game) SetMinSize(w, h int) {
	if w > 0 {
		g.minW = w
	}
	if h > 0 {
		g.minH = h
	}
	g.checkScreenSize()
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.eng == nil {
		opts := append([]engine.Option{engine.WithSeed(cfg.Seed)}, g.engineOpts...)
		g.eng = engine.New(opts...)
	}
	g.eng.NewGame()

	g.seed = cfg.Seed
	g.tick = 0
	g.started = g.now()
	g.ended = time.Time{}
	g.gameOver = false
	g.paused = false
	g.wonAt = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.log.Debug("game started", "seed", cfg.Seed, "size", g.eng.Size(), "best", g.eng.BestScore())
}

// Resize records the terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < g.minW || g.screenH < g.minH
}

// Step advances the game by one tick. At most one direction is applied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.eng == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in.Direction())
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed, err := g.eng.Move(dir)
	if err != nil {
		g.log.Error("move rejected", "dir", dir, "err", err)
		return core.StepResult{State: g.State()}
	}
	if !changed {
		return core.StepResult{State: g.State()}
	}

	g.eng.SpawnTile()

	if g.wonAt == 0 && g.eng.Board().MaxTile() >= WinTile {
		g.wonAt = g.Moves()
		g.log.Info("win tile reached", "score", g.eng.Score(), "moves", g.wonAt)
	}

	res := core.StepResult{Moved: true}
	if g.eng.IsTerminal() {
		g.gameOver = true
		g.ended = g.now()
		res.Finished = true
		g.log.Info("game over",
			"score", g.eng.Score(),
			"best", g.eng.BestScore(),
			"max_tile", g.eng.Board().MaxTile(),
			"moves", g.Moves(),
		)
	}
	res.State = g.State()
	return res
}

func directionFor(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.DirUp, true
	case core.ActionDown:
		return engine.DirDown, true
	case core.ActionLeft:
		return engine.DirLeft, true
	case core.ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.eng.Score(),
		BestScore: g.eng.BestScore(),
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
	}
}

// Moves returns the number of board-changing moves in the current game.
func (g *Game) Moves() int {
	if g.eng == nil {
		return 0
	}
	return g.eng.Snapshot().Moves
}

// TooSmall reports whether the terminal is below the minimum size.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// MinSize returns the minimum terminal size.
func (g *Game) MinSize() (w, h int) {
	return g.minW, g.minH
}
