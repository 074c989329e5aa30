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

// TickMillis returns the duration of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}

// GameState is the read-only snapshot a game reports to the platform each tick.
type GameState struct {
	Score       int     // Current score
	Rescues     int     // Spiders rescued this session
	CountdownMs float64 // Remaining time; meaningless when Timed is false
	Timed       bool    // Whether a countdown is running
	GameOver    bool    // Whether the game has ended
	Paused      bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished timed run, for the run history.
type RunSummary struct {
	Score        int
	Rescues      int
	Berries      int
	PeakSegments int
	DurationMs   float64
	Seed         int64
}
