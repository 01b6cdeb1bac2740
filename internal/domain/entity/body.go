package entity

// Rect is an axis-aligned box in world pixels
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes share interior area
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Body is the kinematic state shared by the player and enemies.
// X, Y is the top-left of the bounding box; velocities are pixels per frame.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Rect returns the bounding box
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// CenterX returns the horizontal center
func (b *Body) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center
func (b *Body) CenterY() float64 {
	return b.Y + b.H/2
}

// Corners returns the four sampled corners of the box.
// The right and bottom edges are inclusive, so a box resting exactly on a
// tile boundary touches that tile.
func (b *Body) Corners() [4]Vec {
	x2 := b.X + b.W
	y2 := b.Y + b.H
	return [4]Vec{
		{b.X, b.Y},
		{x2, b.Y},
		{b.X, y2},
		{x2, y2},
	}
}

// SetPos places the body and clears its velocity
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0
	b.VY = 0
}
