package system

import (
	"math"

	"github.com/younwookim/nukem/internal/domain/entity"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

// PatrolSystem walks enemies back and forth between their bounds.
// Enemies ignore gravity; they turn at walls, ledges and bounds.
type PatrolSystem struct {
	config *config.EnemyConfig
	grid   *entity.Grid
}

// NewPatrolSystem creates a new patrol system
func NewPatrolSystem(cfg *config.EnemyConfig, grid *entity.Grid) *PatrolSystem {
	return &PatrolSystem{
		config: cfg,
		grid:   grid,
	}
}

// SetGrid swaps the grid, used when a level is reloaded
func (s *PatrolSystem) SetGrid(grid *entity.Grid) {
	s.grid = grid
}

// Spawn creates the enemy set for a level in spawn order
func (s *PatrolSystem) Spawn(spawns []entity.EnemySpawn) []*entity.Enemy {
	enemies := make([]*entity.Enemy, len(spawns))
	for i, sp := range spawns {
		enemies[i] = entity.NewEnemy(entity.EntityID(i+1), sp,
			s.config.Width, s.config.Height, s.config.Speed, s.config.HitPoints)
	}
	return enemies
}

// UpdateAll advances every live enemy
func (s *PatrolSystem) UpdateAll(enemies []*entity.Enemy) {
	for _, e := range enemies {
		s.Update(e)
	}
}

// Update advances one enemy a frame. Dead enemies are inert.
func (s *PatrolSystem) Update(e *entity.Enemy) {
	if !e.IsAlive() {
		return
	}

	e.X += e.VX

	switch {
	case s.blocked(e):
		e.X -= e.VX
		e.VX = -e.VX
	case !s.grid.IsSolid(e.CenterX(), e.Y+e.H+1):
		// Ledge: step back twice the move and turn around
		e.X -= 2 * e.VX
		e.VX = -e.VX
		if s.blocked(e) {
			e.X -= e.VX
		}
	}

	if e.X < e.LeftBound {
		e.X = e.LeftBound
		e.VX = math.Abs(e.VX)
	}
	if e.X+e.W > e.RightBound {
		e.X = e.RightBound - e.W
		e.VX = -math.Abs(e.VX)
	}

	e.FrameTimer++
	if e.FrameTimer >= s.config.AnimTicks {
		e.FrameTimer = 0
		e.Frame++
	}
}

// blocked reports whether any corner of the enemy sits in a solid tile
func (s *PatrolSystem) blocked(e *entity.Enemy) bool {
	for _, c := range e.Corners() {
		if s.grid.IsSolid(c.X, c.Y) {
			return true
		}
	}
	return false
}
