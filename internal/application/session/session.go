// Package session drives one level frame by frame.
//
// A Session owns the grid, the player, the enemy batch, the projectile pool
// and the score, and steps them in a fixed order. It never logs and never
// fails once built; everything it wants the host to know comes back as
// events from Step.
package session

import (
	"github.com/younwookim/nukem/internal/application/system"
	"github.com/younwookim/nukem/internal/domain/entity"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

// Session is a running level
type Session struct {
	tuning *config.Tuning
	level  *entity.Level

	world system.World
	frame int

	physics      *system.PhysicsSystem
	players      *system.PlayerSystem
	patrol       *system.PatrolSystem
	index        *system.EnemyIndex
	interactions *system.InteractionSystem
}

// New starts level with the given tuning.
// The level's grid is cloned; pickups consumed during play never touch it.
func New(level *entity.Level, tuning *config.Tuning) *Session {
	s := &Session{
		tuning: tuning,
		level:  level,
	}
	s.Restart()
	return s
}

// Step advances the simulation by one frame.
//
// Order: projectiles, enemies, player, tile triggers, enemy contact. When a
// trigger or contact ends the round the session is reset before returning,
// and the returned events still describe what happened.
func (s *Session) Step(input system.InputState) []system.Event {
	s.frame++
	w := &s.world

	events := w.Projectiles.Update(w.Grid, w.Enemies, s.index)

	s.patrol.UpdateAll(w.Enemies)
	s.index.Sync()

	events = append(events, s.players.Update(w.Player, input, w.Projectiles)...)

	tileEvents := s.interactions.ResolveTiles(w)
	events = append(events, tileEvents...)
	if endsRound(tileEvents) {
		// Contacts would only test the freshly reset round
		s.Reset()
		return events
	}

	contactEvents := s.interactions.ResolveEnemyContacts(w)
	events = append(events, contactEvents...)
	if endsRound(contactEvents) {
		s.Reset()
	}

	return events
}

// Reset starts the round over after a death or a cleared goal.
// The player returns to its respawn point, enemies are recreated from their
// spawns and the score drops to zero. Consumed pickups stay consumed.
func (s *Session) Reset() {
	w := &s.world
	w.Player.ResetAt()
	w.Enemies = s.patrol.Spawn(s.level.Enemies)
	s.index.Rebuild(w.Enemies)
	w.Projectiles.Clear()
	w.Score = 0
}

// Restart reloads the level from scratch: a fresh grid, the player back at
// the level start and checkpoints forgotten.
func (s *Session) Restart() {
	grid := s.level.Grid.Clone()
	pc := &s.tuning.Player

	s.physics = system.NewPhysicsSystem(grid, s.tuning.World.Gravity)
	s.players = system.NewPlayerSystem(pc, s.physics)
	s.patrol = system.NewPatrolSystem(&s.tuning.Enemy, grid)
	s.index = system.NewEnemyIndex(grid.PixelWidth(), grid.PixelHeight(), grid.TileSize)
	s.interactions = system.NewInteractionSystem(s.players, s.index)

	s.world = system.World{
		Grid:        grid,
		Player:      entity.NewPlayer(s.level.Start, pc.Width, pc.Height, pc.MaxHealth),
		Projectiles: system.NewProjectilePool(&s.tuning.Projectile),
	}
	s.frame = 0
	s.Reset()
}

// Load swaps in another level and restarts on it
func (s *Session) Load(level *entity.Level) {
	s.level = level
	s.Restart()
}

// Level returns the level being played
func (s *Session) Level() *entity.Level {
	return s.level
}

// Tuning returns the tuning the session runs with
func (s *Session) Tuning() *config.Tuning {
	return s.tuning
}

// Grid returns the live grid
func (s *Session) Grid() *entity.Grid {
	return s.world.Grid
}

// Player returns the player
func (s *Session) Player() *entity.Player {
	return s.world.Player
}

// Enemies returns the current enemy batch in spawn order
func (s *Session) Enemies() []*entity.Enemy {
	return s.world.Enemies
}

// Projectiles returns the projectile pool
func (s *Session) Projectiles() *system.ProjectilePool {
	return s.world.Projectiles
}

// Score returns the pickups collected this round
func (s *Session) Score() int {
	return s.world.Score
}

// Frame returns the number of frames stepped since the last Restart
func (s *Session) Frame() int {
	return s.frame
}

func endsRound(events []system.Event) bool {
	for _, e := range events {
		if system.EndsRound(e) {
			return true
		}
	}
	return false
}
