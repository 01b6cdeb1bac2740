package entity

// Enemy represents a patrolling enemy
type Enemy struct {
	ID EntityID
	Body

	// Patrol bounds: LeftBound <= X and X+W <= RightBound
	LeftBound  float64
	RightBound float64

	Alive     bool
	HitPoints int

	Frame      int
	FrameTimer int
}

// NewEnemy creates an enemy from its spawn descriptor.
// Enemies start walking left.
func NewEnemy(id EntityID, spawn EnemySpawn, w, h, speed float64, hitPoints int) *Enemy {
	return &Enemy{
		ID:         id,
		Body:       Body{X: spawn.X, Y: spawn.Y, W: w, H: h, VX: -speed},
		LeftBound:  spawn.LeftBound,
		RightBound: spawn.RightBound,
		Alive:      true,
		HitPoints:  hitPoints,
	}
}

// Hit applies one point of damage. Returns true if the enemy died.
func (e *Enemy) Hit() bool {
	if !e.Alive {
		return false
	}
	e.HitPoints--
	if e.HitPoints <= 0 {
		e.HitPoints = 0
		e.Alive = false
		return true
	}
	return false
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Alive && e.HitPoints > 0
}

// Facing returns +1 when walking right, -1 otherwise
func (e *Enemy) Facing() int {
	if e.VX > 0 {
		return 1
	}
	return -1
}
