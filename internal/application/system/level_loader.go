package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/nukem/internal/domain/entity"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

// ErrInvalidLevel is returned for level data the simulation cannot run
var ErrInvalidLevel = errors.New("invalid level")

var kindCodes = map[string]entity.TileCode{
	config.KindEmpty:      entity.TileEmpty,
	config.KindSolid:      entity.TileSolid,
	config.KindLadder:     entity.TileLadder,
	config.KindSpike:      entity.TileSpike,
	config.KindCheckpoint: entity.TileCheckpoint,
	config.KindGoal:       entity.TileGoal,
	config.KindPickup:     entity.TilePickup,
}

// BuildLevel converts a LevelConfig into a validated Level.
// Everything the frame loop relies on is checked here so a running level
// never meets out-of-range spawns.
func BuildLevel(cfg *config.LevelConfig, tuning *config.Tuning) (*entity.Level, error) {
	tileSize := cfg.TileSize
	if tileSize == 0 {
		tileSize = tuning.World.TileSize
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidLevel, tileSize)
	}

	rows := len(cfg.Rows)
	if rows == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLevel)
	}
	cols := len([]rune(cfg.Rows[0]))
	if cols == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidLevel)
	}

	legend := cfg.ResolveLegend()
	grid := entity.NewGrid(cols, rows, tileSize)
	for y, line := range cfg.Rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLevel, y, len(runes), cols)
		}
		for x, ch := range runes {
			kind, ok := legend[string(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrInvalidLevel, ch, x, y)
			}
			code, ok := kindCodes[kind]
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile kind %q for %q", ErrInvalidLevel, kind, ch)
			}
			grid.Set(x, y, code)
		}
	}

	level := &entity.Level{
		ID:    cfg.ID,
		Name:  cfg.Name,
		Grid:  grid,
		Start: entity.Vec{X: cfg.Start.X, Y: cfg.Start.Y},
	}

	if err := validateStart(grid, level.Start, tuning.Player.Width, tuning.Player.Height); err != nil {
		return nil, err
	}

	for i, ec := range cfg.Enemies {
		spawn := entity.EnemySpawn{X: ec.X, Y: ec.Y, LeftBound: ec.Left, RightBound: ec.Right}
		if err := validateSpawn(grid, spawn, tuning.Enemy.Width, tuning.Enemy.Height); err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		level.Enemies = append(level.Enemies, spawn)
	}

	return level, nil
}

func validateStart(grid *entity.Grid, start entity.Vec, w, h float64) error {
	if start.X < 0 || start.X+w > grid.PixelWidth() || start.Y < 0 || start.Y+h > grid.PixelHeight() {
		return fmt.Errorf("%w: start (%.0f,%.0f) outside level", ErrInvalidLevel, start.X, start.Y)
	}
	body := entity.Body{X: start.X, Y: start.Y, W: w, H: h}
	for _, c := range body.Corners() {
		if grid.IsSolid(c.X, c.Y) {
			return fmt.Errorf("%w: start (%.0f,%.0f) inside solid tile", ErrInvalidLevel, start.X, start.Y)
		}
	}
	return nil
}

func validateSpawn(grid *entity.Grid, sp entity.EnemySpawn, w, h float64) error {
	levelW, levelH := grid.PixelWidth(), grid.PixelHeight()
	switch {
	case sp.X < 0 || sp.X+w > levelW || sp.Y < 0 || sp.Y+h > levelH:
		return fmt.Errorf("%w: spawn (%.0f,%.0f) outside level", ErrInvalidLevel, sp.X, sp.Y)
	case sp.LeftBound < 0 || sp.RightBound > levelW:
		return fmt.Errorf("%w: patrol [%.0f,%.0f] outside level", ErrInvalidLevel, sp.LeftBound, sp.RightBound)
	case sp.RightBound-sp.LeftBound < w:
		return fmt.Errorf("%w: patrol [%.0f,%.0f] narrower than enemy", ErrInvalidLevel, sp.LeftBound, sp.RightBound)
	case sp.X < sp.LeftBound || sp.X+w > sp.RightBound:
		return fmt.Errorf("%w: spawn x %.0f outside patrol [%.0f,%.0f]", ErrInvalidLevel, sp.X, sp.LeftBound, sp.RightBound)
	case !grid.IsSolid(sp.X+w/2, sp.Y+h+1):
		return fmt.Errorf("%w: spawn (%.0f,%.0f) has no floor", ErrInvalidLevel, sp.X, sp.Y)
	}

	// The band the enemy sweeps must be clear of walls
	ts := grid.TileSize
	col0, row0 := grid.CellOf(sp.LeftBound, sp.Y)
	col1 := int(math.Ceil(sp.RightBound/float64(ts))) - 1
	row1 := int(math.Ceil((sp.Y+h)/float64(ts))) - 1
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if grid.Cell(col, row) == entity.TileSolid {
				return fmt.Errorf("%w: patrol [%.0f,%.0f] crosses solid tile (%d,%d)",
					ErrInvalidLevel, sp.LeftBound, sp.RightBound, col, row)
			}
		}
	}
	return nil
}
