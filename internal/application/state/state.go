package state

import "github.com/younwookim/nukem/internal/application/system"

// GameState is what the host shows around the simulation
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateCleared
	StateDefeated
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateCleared:
		return "Cleared"
	case StateDefeated:
		return "Defeated"
	default:
		return "Unknown"
	}
}

// Running reports whether the simulation should be stepped.
// Cleared and Defeated are banners over a round that has already restarted.
func (s GameState) Running() bool {
	return s != StatePaused
}

// TogglePause flips between Paused and Playing. A banner state pauses too.
func (s GameState) TogglePause() GameState {
	if s == StatePaused {
		return StatePlaying
	}
	return StatePaused
}

// After returns the state to show once a frame has produced events.
// The last round-ending event wins; without one the state is unchanged.
func (s GameState) After(events []system.Event) GameState {
	next := s
	for _, e := range events {
		switch e.(type) {
		case system.LevelCleared:
			next = StateCleared
		case system.PlayerDefeated:
			next = StateDefeated
		}
	}
	return next
}
