package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to derive their fixed time step.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the fixed simulation step in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// TickMillis converts a tick counter into simulated milliseconds.
// Games use this as their monotonic clock so cooldowns stay deterministic.
func (c RuntimeConfig) TickMillis(tick int64) int64 {
	rate := int64(c.TickRate)
	if rate <= 0 {
		rate = 60
	}
	return tick * 1000 / rate
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the sound cues raised during the tick.
type StepResult struct {
	State  GameState
	Sounds []Sound
}
