package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	BestScore int // Best recorded score, 0 when there is no history
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

// TickSeconds returns the fixed step length implied by the tick rate.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the game is paused
	Idle     bool // Whether the game is waiting for a start signal
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventRoundStarted EventKind = iota
	EventRoundLost
	EventRoundReset
	EventBoardRecycled
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "round_started"
	case EventRoundLost:
		return "round_lost"
	case EventRoundReset:
		return "round_reset"
	case EventBoardRecycled:
		return "board_recycled"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by a game tick.
type Event struct {
	Kind  EventKind
	Score int
	Speed float64
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunSummary describes a finished round for persistence.
type RunSummary struct {
	Score         int
	PeakSpeed     float64
	BoardsCleared int
	Duration      float64 // Seconds alive
}
