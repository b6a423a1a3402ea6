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
		ScreenH:  40,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the length of one fixed tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int           // Combined score of both players
	Score1    int           // Player 1 score
	Score2    int           // Player 2 score
	HighScore int           // Best combined score this session
	Elapsed   time.Duration // Session play time
	GameOver  bool          // Whether the game has ended
	Paused    bool          // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events lists what happened during the tick, for audio and logging.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind classifies a gameplay event.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventEnemyKilled
	EventPlayerHit
	EventPlayerDied
	EventDiamondTaken
	EventDiamondStolen
	EventDiamondDropped
	EventShotFired
	EventGameOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDied:
		return "player_died"
	case EventDiamondTaken:
		return "diamond_taken"
	case EventDiamondStolen:
		return "diamond_stolen"
	case EventDiamondDropped:
		return "diamond_dropped"
	case EventShotFired:
		return "shot_fired"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single gameplay occurrence.
type Event struct {
	Kind   EventKind
	Player PlayerID // Acting or affected player, if any
	Value  int      // Score awarded, enemy id, etc.
}
