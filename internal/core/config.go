// Package core holds the types shared between the game controller and the
// terminal host: runtime settings, semantic actions and per-tick state.
package core

// RuntimeConfig is handed to the game controller when a game starts.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Host ticks per second
	Seed     int64 // Spawn RNG seed; 0 means time-based
}

// DefaultConfig returns the settings used when nothing else is known.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the controller's status as the host sees it.
type GameState struct {
	Score     int
	BestScore int
	GameOver  bool
	Paused    bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Moved is set when a direction changed the board this tick.
	Moved bool
	// Finished is set only on the tick the game became terminal.
	Finished bool
}
