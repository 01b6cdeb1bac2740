package system

import (
	"github.com/younwookim/nukem/internal/domain/entity"
)

// PhysicsSystem integrates bodies against the tile grid.
// Collision samples only the four corners of the box, one axis at a time.
// A body moving more than a tile per frame can tunnel through thin walls.
type PhysicsSystem struct {
	grid    *entity.Grid
	gravity float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(grid *entity.Grid, gravity float64) *PhysicsSystem {
	return &PhysicsSystem{
		grid:    grid,
		gravity: gravity,
	}
}

// Grid returns the grid the system collides against
func (s *PhysicsSystem) Grid() *entity.Grid {
	return s.grid
}

// SetGrid swaps the grid, used when a level is reloaded
func (s *PhysicsSystem) SetGrid(grid *entity.Grid) {
	s.grid = grid
}

// Integrate moves the body by its velocity and reports whether it landed.
// Gravity is skipped while climbing.
func (s *PhysicsSystem) Integrate(b *entity.Body, climbing bool) (grounded bool) {
	if !climbing {
		b.VY += s.gravity
	}

	// Horizontal first
	b.X += b.VX
	if s.Collides(b) {
		b.X -= b.VX
		b.VX = 0
	}

	// Then vertical
	b.Y += b.VY
	if s.Collides(b) {
		grounded = b.VY > 0
		b.Y -= b.VY
		b.VY = 0
	}

	s.clampX(b)
	return grounded
}

// Collides reports whether any corner of the body sits in a solid tile
func (s *PhysicsSystem) Collides(b *entity.Body) bool {
	for _, c := range b.Corners() {
		if s.grid.IsSolid(c.X, c.Y) {
			return true
		}
	}
	return false
}

func (s *PhysicsSystem) clampX(b *entity.Body) {
	if b.X < 0 {
		b.X = 0
	}
	if maxX := s.grid.PixelWidth() - b.W; b.X > maxX {
		b.X = maxX
	}
}
