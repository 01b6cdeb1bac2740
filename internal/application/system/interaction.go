package system

import (
	"github.com/younwookim/nukem/internal/domain/entity"
)

// World is the mutable state a frame step works on
type World struct {
	Grid        *entity.Grid
	Player      *entity.Player
	Enemies     []*entity.Enemy
	Projectiles *ProjectilePool
	Score       int
}

// InteractionSystem resolves tile triggers and player-vs-enemy contact
type InteractionSystem struct {
	player *PlayerSystem
	index  *EnemyIndex
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(player *PlayerSystem, index *EnemyIndex) *InteractionSystem {
	return &InteractionSystem{
		player: player,
		index:  index,
	}
}

// CheckpointPosition is where a player of height h respawns after touching
// the checkpoint cell: left-aligned, standing just above the cell's floor.
func CheckpointPosition(grid *entity.Grid, col, row int, h float64) entity.Vec {
	ts := float64(grid.TileSize)
	return entity.Vec{
		X: float64(col) * ts,
		Y: float64(row+1)*ts - h - 1,
	}
}

// ResolveTiles applies the tile under the player's center.
// A LevelCleared or PlayerDefeated in the result means the caller must reset
// the round.
func (s *InteractionSystem) ResolveTiles(w *World) []Event {
	p := w.Player
	col, row := w.Grid.CellOf(p.CenterX(), p.CenterY())

	switch w.Grid.Cell(col, row) {
	case entity.TileSpike:
		// Hit from just behind the player so knockback carries it forward
		return s.player.TakeDamage(p, p.CenterX()-float64(p.Facing))

	case entity.TilePickup:
		if !w.Grid.Consume(col, row) {
			return nil
		}
		w.Score++
		return []Event{PickupCollected{Col: col, Row: row, Score: w.Score}}

	case entity.TileCheckpoint:
		pos := CheckpointPosition(w.Grid, col, row, p.H)
		if p.Respawn == pos {
			return nil
		}
		p.Respawn = pos
		return []Event{CheckpointReached{Col: col, Row: row, Respawn: pos}}

	case entity.TileGoal:
		return []Event{LevelCleared{Score: w.Score}}
	}

	return nil
}

// ResolveEnemyContacts damages the player once per overlapping live enemy.
// Invincibility from the first hit absorbs the rest within the frame.
func (s *InteractionSystem) ResolveEnemyContacts(w *World) []Event {
	var events []Event
	p := w.Player
	for _, e := range s.index.Overlaps(p.Rect(), w.Enemies) {
		events = append(events, s.player.TakeDamage(p, e.CenterX())...)
	}
	return events
}
