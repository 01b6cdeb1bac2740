package system

import "github.com/younwookim/nukem/internal/domain/entity"

// Event is something a frame step reports to the host
type Event interface {
	isEvent()
}

// LevelCleared is emitted when the player reaches the goal
type LevelCleared struct {
	Score int
}

func (LevelCleared) isEvent() {}

// PlayerDefeated is emitted when health drops to zero
type PlayerDefeated struct{}

func (PlayerDefeated) isEvent() {}

// PlayerHurt is emitted for every hit that costs health
type PlayerHurt struct {
	Health  int
	SourceX float64
}

func (PlayerHurt) isEvent() {}

// PickupCollected is emitted once per consumed pickup cell
type PickupCollected struct {
	Col, Row int
	Score    int
}

func (PickupCollected) isEvent() {}

// CheckpointReached is emitted when the respawn point moves
type CheckpointReached struct {
	Col, Row int
	Respawn  entity.Vec
}

func (CheckpointReached) isEvent() {}

// EnemyHit is emitted when a projectile damages an enemy
type EnemyHit struct {
	ID        entity.EntityID
	HitPoints int
	Killed    bool
}

func (EnemyHit) isEvent() {}

// ShotFired is emitted when the player spawns a projectile
type ShotFired struct {
	X, Y float64
	Dir  int
}

func (ShotFired) isEvent() {}

// EndsRound reports whether the event resets the round
func EndsRound(e Event) bool {
	switch e.(type) {
	case LevelCleared, PlayerDefeated:
		return true
	}
	return false
}
