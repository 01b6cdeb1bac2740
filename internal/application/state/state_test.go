package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/nukem/internal/application/system"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateCleared, "Cleared"},
		{StateDefeated, "Defeated"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Running(t *testing.T) {
	assert.True(t, StatePlaying.Running())
	assert.True(t, StateCleared.Running())
	assert.True(t, StateDefeated.Running())
	assert.False(t, StatePaused.Running())
}

func TestGameState_TogglePause(t *testing.T) {
	assert.Equal(t, StatePaused, StatePlaying.TogglePause())
	assert.Equal(t, StatePlaying, StatePaused.TogglePause())
	assert.Equal(t, StatePaused, StateCleared.TogglePause())
}

func TestGameState_After(t *testing.T) {
	tests := []struct {
		name     string
		from     GameState
		events   []system.Event
		expected GameState
	}{
		{"no events", StatePlaying, nil, StatePlaying},
		{"pickup", StatePlaying, []system.Event{system.PickupCollected{Score: 1}}, StatePlaying},
		{"cleared", StatePlaying, []system.Event{system.LevelCleared{Score: 4}}, StateCleared},
		{"defeated", StatePlaying, []system.Event{system.PlayerHurt{}, system.PlayerDefeated{}}, StateDefeated},
		{"banner stays", StateCleared, []system.Event{system.ShotFired{Dir: 1}}, StateCleared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.After(tt.events))
		})
	}
}
