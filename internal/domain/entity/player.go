package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// AnimState is the player's animation state
type AnimState int

const (
	StateIdle AnimState = iota
	StateRun
	StateJump
	StateClimb
	StateShoot
)

// String returns the string representation of the animation state
func (s AnimState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateJump:
		return "jump"
	case StateClimb:
		return "climb"
	case StateShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// SheetFrames is the number of frames on each sprite sheet.
// Idle has no sheet of its own and shows the first run frame.
var SheetFrames = map[AnimState]int{
	StateIdle:  6,
	StateRun:   6,
	StateJump:  4,
	StateClimb: 4,
	StateShoot: 4,
}

// Player represents the player entity
type Player struct {
	Body

	Facing   int // +1 right, -1 left
	Grounded bool
	OnLadder bool

	State      AnimState
	Frame      int
	FrameTimer int

	ShootCooldown int
	ShootHeld     bool // shoot input as of the last frame

	Health          int
	MaxHealth       int
	InvincibleTimer int

	// Respawn starts at the level start and is overwritten by checkpoints
	Respawn Vec
}

// NewPlayer creates a player standing at start
func NewPlayer(start Vec, w, h float64, maxHealth int) *Player {
	return &Player{
		Body:      Body{X: start.X, Y: start.Y, W: w, H: h},
		Facing:    1,
		State:     StateIdle,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Respawn:   start,
	}
}

// IsInvincible returns true if player is currently invincible
func (p *Player) IsInvincible() bool {
	return p.InvincibleTimer > 0
}

// Shooting reports whether the shoot pose is still being held
func (p *Player) Shooting() bool {
	return p.State == StateShoot && p.ShootCooldown > 0
}

// Visible returns false on the hidden half of the invincibility flicker.
// period is the length of one visible or hidden window in frames.
func (p *Player) Visible(period int) bool {
	if p.InvincibleTimer <= 0 || period <= 0 {
		return true
	}
	return (p.InvincibleTimer/period)%2 == 0
}

// SheetFrame returns the frame index to draw from the current sheet
func (p *Player) SheetFrame() int {
	if p.State == StateIdle {
		return 0
	}
	n := SheetFrames[p.State]
	if n <= 0 {
		return 0
	}
	return p.Frame % n
}

// ResetAt puts the player back at its respawn point with full health.
// The respawn point itself is kept.
func (p *Player) ResetAt() {
	p.SetPos(p.Respawn.X, p.Respawn.Y)
	p.Facing = 1
	p.Grounded = false
	p.OnLadder = false
	p.State = StateIdle
	p.Frame = 0
	p.FrameTimer = 0
	p.ShootCooldown = 0
	p.Health = p.MaxHealth
	p.InvincibleTimer = 0
}
