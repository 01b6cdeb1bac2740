package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/nukem/internal/domain/entity"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

var testGlyphs = map[rune]entity.TileCode{
	'.': entity.TileEmpty,
	'#': entity.TileSolid,
	'H': entity.TileLadder,
	'^': entity.TileSpike,
	'C': entity.TileCheckpoint,
	'G': entity.TileGoal,
	'*': entity.TilePickup,
}

// createTestGrid builds a 16px grid from glyph rows
func createTestGrid(rows ...string) *entity.Grid {
	grid := entity.NewGrid(len(rows[0]), len(rows), 16)
	for y, row := range rows {
		for x, ch := range row {
			grid.Set(x, y, testGlyphs[ch])
		}
	}
	return grid
}

// createTestRoom is a 10x6 room: walls on the sides, floor on row 5
func createTestRoom() *entity.Grid {
	return createTestGrid(
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	)
}

func createTestTuning() *config.Tuning {
	return config.DefaultTuning()
}

func TestNewPhysicsSystem(t *testing.T) {
	grid := createTestRoom()

	sys := NewPhysicsSystem(grid, 0.6)

	require.NotNil(t, sys)
	assert.Equal(t, grid, sys.Grid())
	assert.Equal(t, 0.6, sys.gravity)
}

func TestPhysicsSystem_Collides(t *testing.T) {
	sys := NewPhysicsSystem(createTestRoom(), 0.6)

	tests := []struct {
		name     string
		body     entity.Body
		expected bool
	}{
		{"open air", entity.Body{X: 32, Y: 16, W: 12, H: 12}, false},
		{"left wall", entity.Body{X: 10, Y: 16, W: 12, H: 12}, true},
		{"bottom edge touches floor row", entity.Body{X: 32, Y: 68, W: 12, H: 12}, true},
		{"just above floor", entity.Body{X: 32, Y: 67.9, W: 12, H: 12}, false},
		{"right edge on wall boundary", entity.Body{X: 132, Y: 16, W: 12, H: 12}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.body
			assert.Equal(t, tt.expected, sys.Collides(&b))
		})
	}
}

func TestPhysicsSystem_IntegrateLandsOnFloor(t *testing.T) {
	sys := NewPhysicsSystem(createTestRoom(), 0.6)
	b := &entity.Body{X: 40, Y: 16, W: 12, H: 12}

	var grounded bool
	for i := 0; i < 120; i++ {
		grounded = sys.Integrate(b, false)
		require.False(t, sys.Collides(b), "frame %d", i)
	}

	assert.True(t, grounded)
	assert.Zero(t, b.VY)
	assert.Less(t, b.Y+b.H, 80.0)
	assert.GreaterOrEqual(t, b.Y+b.H, 79.0)

	// Resting stays grounded
	for i := 0; i < 10; i++ {
		assert.True(t, sys.Integrate(b, false))
	}
}

func TestPhysicsSystem_GroundedOnlyOnDownwardCollision(t *testing.T) {
	sys := NewPhysicsSystem(createTestGrid(
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"##########",
	), 0.6)

	t.Run("ceiling bump is not grounded", func(t *testing.T) {
		b := &entity.Body{X: 40, Y: 18, W: 12, H: 12, VY: -5}
		grounded := sys.Integrate(b, false)

		assert.False(t, grounded)
		assert.Zero(t, b.VY)
		assert.InDelta(t, 18.0, b.Y, 1e-9, "vertical move reverted")
	})

	t.Run("free fall is not grounded", func(t *testing.T) {
		b := &entity.Body{X: 40, Y: 20, W: 12, H: 12, VY: 1}
		assert.False(t, sys.Integrate(b, false))
		assert.InDelta(t, 1.6, b.VY, 1e-9)
	})

	t.Run("landing is grounded", func(t *testing.T) {
		b := &entity.Body{X: 40, Y: 50, W: 12, H: 12, VY: 3}
		assert.True(t, sys.Integrate(b, false))
		assert.InDelta(t, 50.0, b.Y, 1e-9)
	})

	t.Run("horizontal hit alone is not grounded", func(t *testing.T) {
		b := &entity.Body{X: 130, Y: 30, W: 12, H: 12, VX: 5}
		assert.False(t, sys.Integrate(b, true))
		assert.Zero(t, b.VX)
		assert.Equal(t, 130.0, b.X)
	})
}

func TestPhysicsSystem_HorizontalRevert(t *testing.T) {
	sys := NewPhysicsSystem(createTestRoom(), 0.6)
	b := &entity.Body{X: 128, Y: 30, W: 12, H: 12, VX: 3}

	sys.Integrate(b, true)

	assert.Equal(t, 128.0, b.X)
	assert.Zero(t, b.VX)
}

func TestPhysicsSystem_ClimbingSkipsGravity(t *testing.T) {
	sys := NewPhysicsSystem(createTestRoom(), 0.6)
	b := &entity.Body{X: 40, Y: 30, W: 12, H: 12}

	sys.Integrate(b, true)

	assert.Equal(t, 30.0, b.Y)
	assert.Zero(t, b.VY)

	b.VY = -2
	sys.Integrate(b, true)
	assert.Equal(t, 28.0, b.Y)
	assert.Equal(t, -2.0, b.VY)
}

func TestPhysicsSystem_ClampsToLevel(t *testing.T) {
	// No side walls so only the clamp holds the body in
	sys := NewPhysicsSystem(createTestGrid(
		"........",
		"........",
		"########",
	), 0)

	left := &entity.Body{X: 2, Y: 4, W: 12, H: 12, VX: -5}
	sys.Integrate(left, false)
	assert.Equal(t, 0.0, left.X)

	right := &entity.Body{X: 114, Y: 4, W: 12, H: 12, VX: 5}
	sys.Integrate(right, false)
	assert.Equal(t, 128.0-12, right.X)
}

func TestPhysicsSystem_NeverEndsInsideSolid(t *testing.T) {
	sys := NewPhysicsSystem(createTestGrid(
		"################",
		"#..............#",
		"#....##........#",
		"#..........#...#",
		"#...####...#...#",
		"#..........#...#",
		"#......###.....#",
		"################",
	), 0.6)
	rng := rand.New(rand.NewSource(7))

	b := &entity.Body{X: 24, Y: 24, W: 12, H: 12}
	require.False(t, sys.Collides(b))

	for i := 0; i < 2000; i++ {
		// Speeds stay under a tile per frame
		b.VX = rng.Float64()*20 - 10
		if rng.Intn(10) == 0 {
			b.VY = -(rng.Float64() * 10)
		}
		if b.VY > 10 {
			b.VY = 10
		}
		sys.Integrate(b, false)
		require.False(t, sys.Collides(b), "frame %d at (%.2f, %.2f)", i, b.X, b.Y)
	}
}
