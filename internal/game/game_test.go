package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
	}
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// playOut cycles through the directions until the game ends.
func playOut(t *testing.T, g *Game) (finishedTicks int) {
	t.Helper()
	cycle := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := 0; i < 20000; i++ {
		res := g.Step(press(cycle[i%len(cycle)]))
		if res.Finished {
			finishedTicks++
		}
		if res.State.GameOver {
			return finishedTicks
		}
	}
	t.Fatal("game did not end")
	return 0
}

func TestResetSpawnsOpeningTiles(t *testing.T) {
	g := New(nil)
	g.Reset(testConfig(42))

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 4, snap.Size)
	assert.Zero(t, snap.Score)

	tiles := 0
	for _, row := range snap.Board {
		for _, v := range row {
			if v != 0 {
				tiles++
			}
		}
	}
	assert.Equal(t, 2, tiles)
}

func TestStepMatchesEngineControlFlow(t *testing.T) {
	g := New(nil)
	g.Reset(testConfig(7))

	ref := engine.New(engine.WithSeed(7))
	ref.NewGame()
	require.Equal(t, ref.Board().Rows(), g.Snapshot().Board)

	moves := []struct {
		action core.Action
		dir    engine.Direction
	}{
		{core.ActionLeft, engine.DirLeft},
		{core.ActionUp, engine.DirUp},
		{core.ActionRight, engine.DirRight},
		{core.ActionDown, engine.DirDown},
		{core.ActionLeft, engine.DirLeft},
		{core.ActionLeft, engine.DirLeft},
	}
	for _, m := range moves {
		changed, err := ref.Move(m.dir)
		require.NoError(t, err)
		if changed {
			ref.SpawnTile()
		}

		res := g.Step(press(m.action))
		assert.Equal(t, changed, res.Moved, "move %s", m.dir)
		require.Equal(t, ref.Board().Rows(), g.Snapshot().Board, "after %s", m.dir)
		assert.Equal(t, ref.Score(), res.State.Score)
	}
}

func TestStepAppliesOneDirectionPerTick(t *testing.T) {
	g := New(nil)
	g.Reset(testConfig(3))

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	g.Step(in)

	assert.LessOrEqual(t, g.Moves(), 1)
}

func TestPauseBlocksMoves(t *testing.T) {
	g := New(nil)
	g.Reset(testConfig(11))
	before := g.Snapshot().Board

	res := g.Step(press(core.ActionPause))
	require.True(t, res.State.Paused)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown} {
		res := g.Step(press(a))
		assert.False(t, res.Moved)
	}
	assert.Equal(t, before, g.Snapshot().Board)

	res = g.Step(press(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestTooSmallWindowPauses(t *testing.T) {
	g := New(nil)
	cfg := testConfig(1)
	cfg.ScreenW = 10
	cfg.ScreenH = 5
	g.Reset(cfg)

	assert.True(t, g.TooSmall())
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.True(t, g.State().Paused)

	before := g.Snapshot().Board
	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionDown))
	assert.Equal(t, before, g.Snapshot().Board)

	// Growing the window resumes without resetting
	g.Resize(80, 24)
	assert.False(t, g.TooSmall())
	assert.Equal(t, before, g.Snapshot().Board)
}

func TestSetMinSize(t *testing.T) {
	g := New(nil)
	g.Reset(testConfig(1))
	require.False(t, g.TooSmall())

	g.SetMinSize(100, 40)
	assert.True(t, g.TooSmall())

	w, h := g.MinSize()
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)
}

func TestGameOverReportedOnce(t *testing.T) {
	g := New(nil, engine.WithSize(2))
	g.Reset(testConfig(5))

	finished := playOut(t, g)
	assert.Equal(t, 1, finished)

	snap := g.Snapshot()
	assert.Equal(t, StateGameOver, snap.State)
	assert.True(t, snap.Terminal)

	// Further input is ignored
	before := snap.Board
	res := g.Step(press(core.ActionLeft))
	assert.False(t, res.Finished)
	assert.False(t, res.Moved)
	assert.Equal(t, before, g.Snapshot().Board)

	// Pause is not available after the game ended
	res = g.Step(press(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestBestScoreSurvivesReset(t *testing.T) {
	g := New(nil, engine.WithSize(2))

	best := 0
	for k := 0; k < 5; k++ {
		g.Reset(testConfig(9))
		st := g.State()
		assert.Zero(t, st.Score)
		assert.Equal(t, best, st.BestScore)
		assert.Equal(t, StatePlaying, g.Snapshot().State)

		playOut(t, g)
		best = max(best, g.State().Score)
		assert.Equal(t, best, g.State().BestScore)
	}
}

func TestResult(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := start

	g := New(nil, engine.WithSize(2))
	g.now = func() time.Time { return clock }
	g.Reset(testConfig(21))

	clock = start.Add(90 * time.Second)
	playOut(t, g)
	clock = start.Add(10 * time.Minute)

	res := g.Result()
	snap := g.Snapshot()
	assert.Equal(t, snap.Score, res.Score)
	assert.Equal(t, snap.MaxTile, res.MaxTile)
	assert.Equal(t, snap.Moves, res.Moves)
	assert.Equal(t, int64(21), res.Seed)
	assert.Equal(t, 90*time.Second, res.Duration)
	assert.False(t, res.Won)
}

func TestStepBeforeReset(t *testing.T) {
	g := New(nil)
	res := g.Step(press(core.ActionLeft))

	assert.False(t, res.Moved)
	assert.Equal(t, core.GameState{}, res.State)
	assert.Equal(t, Result{}, g.Result())
}

func TestStepLeavesRestartToHost(t *testing.T) {
	g := New(nil)
	g.Reset(testConfig(5))
	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionUp))

	before := g.Snapshot()
	res := g.Step(press(core.ActionRestart))

	assert.False(t, res.Moved)
	assert.Equal(t, before.Board, g.Snapshot().Board)
	assert.Equal(t, before.Moves, g.Moves())

	g.Reset(testConfig(5))
	assert.Zero(t, g.Moves())
	assert.Zero(t, g.State().Score)
}
