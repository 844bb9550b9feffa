package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the platform after each tick.
type GameState struct {
	Score       int  // Current score
	Merges      int  // Merges performed this match
	HighestTile int  // Highest tier on the board
	InMatch     bool // A match is counting down, running or finishing
	GameOver    bool // Final result is on screen
	Paused      bool // Simulation is suspended (e.g. window too small)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
