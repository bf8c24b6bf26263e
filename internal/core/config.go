package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
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

// TickDuration returns the fixed physics step for the configured tick rate.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// FrameClock carries both notions of time a frame needs: the fixed physics
// step and the wall-clock time that passed since the previous frame.
type FrameClock struct {
	Tick    time.Duration
	Elapsed time.Duration
}

// FixedClock returns a clock whose elapsed time equals the tick, as used by
// tests and headless runs.
func FixedClock(tick time.Duration) FrameClock {
	return FrameClock{Tick: tick, Elapsed: tick}
}

// GameState represents the current state of a game.
type GameState struct {
	SessionID string        // Unique id of the running session
	Score     int           // Current score
	Remaining time.Duration // Time left on the session timer (0 when untimed)
	GameOver  bool          // Whether the session has ended
	Aborted   bool          // Session ended on an internal error
	Paused    bool          // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
