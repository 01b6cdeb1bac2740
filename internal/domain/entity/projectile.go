package entity

// Projectile represents a player bullet
type Projectile struct {
	X, Y   float64
	VX     float64
	W, H   float64
	StartX float64
	Life   int // frames left
	Active bool
}

// NewProjectile creates a bullet at (x, y) travelling in dir (+1 or -1)
func NewProjectile(x, y float64, dir int, speed float64, life int, w, h float64) *Projectile {
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     float64(dir) * speed,
		W:      w,
		H:      h,
		StartX: x,
		Life:   life,
		Active: true,
	}
}

// Rect returns the hitbox in world coordinates
func (p *Projectile) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// LeadingX returns the x of the edge facing the direction of travel
func (p *Projectile) LeadingX() float64 {
	if p.VX > 0 {
		return p.X + p.W
	}
	return p.X
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}
