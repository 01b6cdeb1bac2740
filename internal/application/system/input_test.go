package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputState_Horizontal(t *testing.T) {
	tests := []struct {
		name     string
		input    InputState
		expected int
	}{
		{"none", InputState{}, 0},
		{"left", InputState{Left: true}, -1},
		{"right", InputState{Right: true}, 1},
		{"both prefers right", InputState{Left: true, Right: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Horizontal())
		})
	}
}

func TestInputState_Vertical(t *testing.T) {
	tests := []struct {
		name     string
		input    InputState
		expected int
	}{
		{"none", InputState{}, 0},
		{"up", InputState{Up: true}, -1},
		{"down", InputState{Down: true}, 1},
		{"both prefers up", InputState{Up: true, Down: true}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Vertical())
		})
	}
}
