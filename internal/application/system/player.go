package system

import (
	"github.com/younwookim/nukem/internal/domain/entity"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

// PlayerSystem runs the player state machine: input, ladder, jump, climb,
// shoot, physics and animation, in that order.
type PlayerSystem struct {
	config  *config.PlayerConfig
	physics *PhysicsSystem
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.PlayerConfig, physics *PhysicsSystem) *PlayerSystem {
	return &PlayerSystem{
		config:  cfg,
		physics: physics,
	}
}

// Update advances the player one frame. Shots are spawned into pool.
func (s *PlayerSystem) Update(p *entity.Player, input InputState, pool *ProjectilePool) []Event {
	var events []Event

	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
	}

	moving := s.handleMovement(p, input)
	s.detectLadder(p)
	s.handleJump(p, input)
	s.handleClimb(p, input)

	if e, ok := s.handleShoot(p, input, pool); ok {
		events = append(events, e)
	}
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}

	s.resolveState(p, moving)

	climbing := p.OnLadder && p.State == entity.StateClimb
	p.Grounded = s.physics.Integrate(&p.Body, climbing)

	s.animate(p)
	return events
}

// handleMovement applies horizontal acceleration or friction
func (s *PlayerSystem) handleMovement(p *entity.Player, input InputState) bool {
	dir := input.Horizontal()
	if dir != 0 {
		p.VX += float64(dir) * s.config.Acceleration
		p.Facing = dir
	} else {
		p.VX *= s.config.Friction
	}

	if p.VX > s.config.MaxSpeed {
		p.VX = s.config.MaxSpeed
	}
	if p.VX < -s.config.MaxSpeed {
		p.VX = -s.config.MaxSpeed
	}
	return dir != 0
}

// detectLadder samples the feet and the middle of the body at center x
func (s *PlayerSystem) detectLadder(p *entity.Player) {
	grid := s.physics.Grid()
	cx := p.CenterX()
	p.OnLadder = grid.IsLadder(cx, p.Y+p.H) || grid.IsLadder(cx, p.CenterY())
}

func (s *PlayerSystem) handleJump(p *entity.Player, input InputState) {
	if !input.Jump || !p.Grounded || p.OnLadder {
		return
	}
	p.VY = -s.config.JumpForce
	p.Grounded = false
	p.State = entity.StateJump
}

func (s *PlayerSystem) handleClimb(p *entity.Player, input InputState) {
	if !p.OnLadder {
		return
	}
	switch input.Vertical() {
	case -1:
		p.VY = -s.config.ClimbSpeed
		p.State = entity.StateClimb
	case 1:
		p.VY = s.config.ClimbSpeed
		p.State = entity.StateClimb
	default:
		if p.State == entity.StateClimb {
			p.VY = 0
		}
	}
}

// handleShoot fires on the frame the shoot input goes down, once the
// cooldown has run out
func (s *PlayerSystem) handleShoot(p *entity.Player, input InputState, pool *ProjectilePool) (Event, bool) {
	pressed := input.Shoot && !p.ShootHeld
	p.ShootHeld = input.Shoot
	if !pressed || p.ShootCooldown > 0 {
		return nil, false
	}
	p.State = entity.StateShoot
	x, y := p.CenterX(), p.CenterY()
	pool.Spawn(x, y, p.Facing)
	p.ShootCooldown = s.config.ShootCooldown
	return ShotFired{X: x, Y: y, Dir: p.Facing}, true
}

// resolveState picks the display state when nothing else owns it
func (s *PlayerSystem) resolveState(p *entity.Player, moving bool) {
	if p.OnLadder || p.Shooting() {
		return
	}
	switch {
	case !p.Grounded:
		p.State = entity.StateJump
	case moving:
		p.State = entity.StateRun
	default:
		p.State = entity.StateIdle
	}
}

func (s *PlayerSystem) animate(p *entity.Player) {
	ticks := s.config.Animation.OtherTicks
	if p.State == entity.StateRun {
		ticks = s.config.Animation.RunTicks
	}
	p.FrameTimer++
	if p.FrameTimer >= ticks {
		p.FrameTimer = 0
		p.Frame++
	}
}

// TakeDamage hits the player from sourceX. It is a no-op while invincible.
// The returned events hold PlayerDefeated when health reaches zero; the
// caller owns the round reset.
func (s *PlayerSystem) TakeDamage(p *entity.Player, sourceX float64) []Event {
	if p.IsInvincible() {
		return nil
	}

	p.Health--
	p.InvincibleTimer = s.config.InvincibilityFrames

	dir := 1.0
	if sourceX > p.CenterX() {
		dir = -1
	}
	p.VX = dir * s.config.Knockback.Force
	p.VY = -s.config.Knockback.UpForce

	events := []Event{PlayerHurt{Health: p.Health, SourceX: sourceX}}
	if p.Health <= 0 {
		p.Health = 0
		events = append(events, PlayerDefeated{})
	}
	return events
}
