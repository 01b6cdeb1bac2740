package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/nukem/internal/domain/entity"
)

// standingY puts a 32px tall player just above the floor on row 5
const standingY = 47.5

func createTestPlayerSystem(grid *entity.Grid) (*PlayerSystem, *ProjectilePool) {
	tuning := createTestTuning()
	physics := NewPhysicsSystem(grid, tuning.World.Gravity)
	return NewPlayerSystem(&tuning.Player, physics), NewProjectilePool(&tuning.Projectile)
}

func createTestPlayer(x, y float64) *entity.Player {
	return entity.NewPlayer(entity.Vec{X: x, Y: y}, 24, 32, 3)
}

// createTestLadderRoom has a ladder on column 5 from row 1 down to the floor
func createTestLadderRoom() *entity.Grid {
	return createTestGrid(
		"#..........#",
		"#....H.....#",
		"#....H.....#",
		"#....H.....#",
		"#....H.....#",
		"############",
	)
}

func TestPlayerSystem_RunAcceleratesAndClamps(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestLadderRoom())
	p := createTestPlayer(16, standingY)
	p.Grounded = true

	sys.Update(p, InputState{Right: true}, pool)
	assert.InDelta(t, 0.6, p.VX, 1e-9)
	assert.Equal(t, 1, p.Facing)
	assert.True(t, p.Grounded)
	assert.Equal(t, entity.StateRun, p.State)

	for i := 0; i < 10; i++ {
		sys.Update(p, InputState{Right: true}, pool)
	}
	assert.Equal(t, 3.0, p.VX)
}

func TestPlayerSystem_FrictionWithoutInput(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())
	p := createTestPlayer(40, standingY)
	p.Grounded = true
	p.VX = 3

	sys.Update(p, InputState{}, pool)

	assert.InDelta(t, 2.1, p.VX, 1e-9)
	assert.Equal(t, entity.StateIdle, p.State)
}

func TestPlayerSystem_RightWinsOverLeft(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())
	p := createTestPlayer(40, standingY)

	sys.Update(p, InputState{Left: true}, pool)
	assert.Equal(t, -1, p.Facing)
	assert.InDelta(t, -0.6, p.VX, 1e-9)

	sys.Update(p, InputState{Left: true, Right: true}, pool)
	assert.Equal(t, 1, p.Facing)
	assert.InDelta(t, 0.0, p.VX, 1e-9)
}

func TestPlayerSystem_Jump(t *testing.T) {
	t.Run("grounded jump", func(t *testing.T) {
		sys, pool := createTestPlayerSystem(createTestRoom())
		p := createTestPlayer(40, standingY)
		p.Grounded = true

		sys.Update(p, InputState{Jump: true}, pool)

		assert.InDelta(t, -11+0.6, p.VY, 1e-9)
		assert.InDelta(t, standingY-10.4, p.Y, 1e-9)
		assert.False(t, p.Grounded)
		assert.Equal(t, entity.StateJump, p.State)
	})

	t.Run("no jump in the air", func(t *testing.T) {
		sys, pool := createTestPlayerSystem(createTestRoom())
		p := createTestPlayer(40, 10)

		sys.Update(p, InputState{Jump: true}, pool)

		assert.InDelta(t, 0.6, p.VY, 1e-9)
		assert.Equal(t, entity.StateJump, p.State)
	})

	t.Run("no jump on a ladder", func(t *testing.T) {
		sys, pool := createTestPlayerSystem(createTestLadderRoom())
		p := createTestPlayer(76, standingY)
		p.Grounded = true

		sys.Update(p, InputState{Jump: true}, pool)

		assert.True(t, p.OnLadder)
		assert.GreaterOrEqual(t, p.VY, 0.0)
		assert.True(t, p.Grounded)
	})
}

func TestPlayerSystem_Climb(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestLadderRoom())
	p := createTestPlayer(76, standingY)
	p.Grounded = true

	sys.Update(p, InputState{Up: true}, pool)

	assert.True(t, p.OnLadder)
	assert.Equal(t, entity.StateClimb, p.State)
	assert.Equal(t, -2.0, p.VY)
	assert.InDelta(t, standingY-2, p.Y, 1e-9)

	// Hover without vertical input
	y := p.Y
	sys.Update(p, InputState{}, pool)
	assert.Equal(t, entity.StateClimb, p.State)
	assert.Zero(t, p.VY)
	assert.Equal(t, y, p.Y)

	sys.Update(p, InputState{Down: true}, pool)
	assert.Equal(t, 2.0, p.VY)
	assert.InDelta(t, y+2, p.Y, 1e-9)
}

func TestPlayerSystem_ClimbNeedsLadder(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestLadderRoom())
	p := createTestPlayer(16, standingY)
	p.Grounded = true

	sys.Update(p, InputState{Up: true}, pool)

	assert.False(t, p.OnLadder)
	assert.NotEqual(t, entity.StateClimb, p.State)
}

func TestPlayerSystem_Shoot(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())
	p := createTestPlayer(40, standingY)
	p.Facing = -1

	events := sys.Update(p, InputState{Shoot: true}, pool)

	require.Len(t, events, 1)
	shot, ok := events[0].(ShotFired)
	require.True(t, ok)
	assert.Equal(t, 52.0, shot.X, "spawned at body center")
	assert.Equal(t, standingY+16, shot.Y)
	assert.Equal(t, -1, shot.Dir)

	assert.Equal(t, 1, pool.Len())
	assert.Equal(t, 14, p.ShootCooldown, "cooldown ticks in the firing frame")
	assert.Equal(t, entity.StateShoot, p.State)

	var dirs []float64
	pool.Each(func(pr *entity.Projectile) { dirs = append(dirs, pr.VX) })
	assert.Equal(t, []float64{-6}, dirs)
}

func TestPlayerSystem_ShootFiresOnPress(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())
	p := createTestPlayer(40, standingY)

	for i := 0; i < 40; i++ {
		sys.Update(p, InputState{Shoot: true}, pool)
	}
	assert.Equal(t, 1, pool.Len(), "holding the key fires once")

	sys.Update(p, InputState{}, pool)
	sys.Update(p, InputState{Shoot: true}, pool)
	assert.Equal(t, 2, pool.Len(), "a fresh press fires again")
}

func TestPlayerSystem_ShootCooldownSwallowsPress(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())
	p := createTestPlayer(40, standingY)

	sys.Update(p, InputState{Shoot: true}, pool)
	sys.Update(p, InputState{}, pool)
	events := sys.Update(p, InputState{Shoot: true}, pool)

	assert.Empty(t, events)
	assert.Equal(t, 1, pool.Len(), "pressed during cooldown")

	for p.ShootCooldown > 0 {
		sys.Update(p, InputState{}, pool)
	}
	events = sys.Update(p, InputState{Shoot: true}, pool)
	require.Len(t, events, 1)
	assert.IsType(t, ShotFired{}, events[0])
	assert.Equal(t, 2, pool.Len())
}

func TestPlayerSystem_ShootPoseLastsForCooldown(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())
	p := createTestPlayer(40, standingY)

	sys.Update(p, InputState{Shoot: true}, pool)
	for i := 0; i < 13; i++ {
		sys.Update(p, InputState{Right: true}, pool)
		require.Equal(t, entity.StateShoot, p.State, "frame %d", i)
	}

	sys.Update(p, InputState{Right: true}, pool)
	assert.Zero(t, p.ShootCooldown)
	assert.Equal(t, entity.StateRun, p.State)
}

func TestPlayerSystem_AirborneShowsJump(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())
	p := createTestPlayer(40, 10)

	sys.Update(p, InputState{Right: true}, pool)

	assert.False(t, p.Grounded)
	assert.Equal(t, entity.StateJump, p.State)
}

func TestPlayerSystem_TakeDamage(t *testing.T) {
	t.Run("second hit inside the window is a no-op", func(t *testing.T) {
		sys, _ := createTestPlayerSystem(createTestRoom())
		p := createTestPlayer(40, standingY)

		first := sys.TakeDamage(p, 0)
		second := sys.TakeDamage(p, 0)

		assert.Equal(t, 2, p.Health)
		assert.Equal(t, 60, p.InvincibleTimer)
		assert.Equal(t, []Event{PlayerHurt{Health: 2, SourceX: 0}}, first)
		assert.Empty(t, second)
	})

	t.Run("knockback away from the source", func(t *testing.T) {
		sys, _ := createTestPlayerSystem(createTestRoom())

		fromRight := createTestPlayer(40, standingY)
		sys.TakeDamage(fromRight, 100)
		assert.Equal(t, -4.0, fromRight.VX)
		assert.Equal(t, -4.0, fromRight.VY)

		fromLeft := createTestPlayer(40, standingY)
		sys.TakeDamage(fromLeft, 10)
		assert.Equal(t, 4.0, fromLeft.VX)
	})

	t.Run("last hit reports defeat", func(t *testing.T) {
		sys, _ := createTestPlayerSystem(createTestRoom())
		p := createTestPlayer(40, standingY)
		p.Health = 1

		events := sys.TakeDamage(p, 0)

		assert.Zero(t, p.Health)
		require.Len(t, events, 2)
		assert.Equal(t, PlayerDefeated{}, events[1])
	})
}

func TestPlayerSystem_InvincibilityCountsDown(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())
	p := createTestPlayer(40, standingY)
	p.InvincibleTimer = 60

	sys.Update(p, InputState{}, pool)

	assert.Equal(t, 59, p.InvincibleTimer)
}

func TestPlayerSystem_Animation(t *testing.T) {
	sys, pool := createTestPlayerSystem(createTestRoom())

	runner := createTestPlayer(16, standingY)
	for i := 0; i < 4; i++ {
		sys.Update(runner, InputState{Right: true}, pool)
	}
	assert.Equal(t, 1, runner.Frame, "run advances every 4 frames")

	idler := createTestPlayer(40, standingY)
	for i := 0; i < 5; i++ {
		sys.Update(idler, InputState{}, pool)
	}
	assert.Zero(t, idler.Frame)
	sys.Update(idler, InputState{}, pool)
	assert.Equal(t, 1, idler.Frame, "other states advance every 6 frames")
}
