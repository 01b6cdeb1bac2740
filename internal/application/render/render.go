// Package render turns a session into draw intents.
//
// Sinks (the ebiten scene, the terminal client) only read a Frame; they never
// touch the simulation. Every Dest is already in screen space.
package render

import (
	"github.com/younwookim/nukem/internal/application/session"
	"github.com/younwookim/nukem/internal/domain/entity"
)

// Sprite names a sprite sheet
type Sprite string

const (
	SpritePlayerRun   Sprite = "player_run"
	SpritePlayerJump  Sprite = "player_jump"
	SpritePlayerClimb Sprite = "player_climb"
	SpritePlayerShoot Sprite = "player_shoot"
	SpriteEnemy       Sprite = "enemy"
	SpriteProjectile  Sprite = "projectile"
)

// playerSheets maps animation states to sheets. Idle borrows the run sheet.
var playerSheets = map[entity.AnimState]Sprite{
	entity.StateIdle:  SpritePlayerRun,
	entity.StateRun:   SpritePlayerRun,
	entity.StateJump:  SpritePlayerJump,
	entity.StateClimb: SpritePlayerClimb,
	entity.StateShoot: SpritePlayerShoot,
}

// TileIntent is one non-empty tile on screen
type TileIntent struct {
	Col, Row int
	Code     entity.TileCode
	Dest     entity.Rect
}

// DrawIntent is one entity to draw
type DrawIntent struct {
	Sprite  Sprite
	Frame   int
	Facing  int
	Dest    entity.Rect
	Visible bool
}

// HUD is the overlay state
type HUD struct {
	Health    int
	MaxHealth int
	Score     int
}

// Frame is everything a sink needs to draw one frame
type Frame struct {
	Camera   float64
	ViewW    int
	ViewH    int
	Tiles    []TileIntent
	Entities []DrawIntent
	HUD      HUD
}

// Camera returns the horizontal scroll that keeps the player's left edge
// half a view in, without showing anything past the level's ends
func Camera(playerX, viewW, levelW float64) float64 {
	cam := playerX - viewW/2
	if maxCam := levelW - viewW; cam > maxCam {
		cam = maxCam
	}
	if cam < 0 {
		cam = 0
	}
	return cam
}

// Build snapshots s for a view of viewW×viewH pixels.
// Entities are ordered enemies, projectiles, then the player on top.
func Build(s *session.Session, viewW, viewH int) Frame {
	grid := s.Grid()
	p := s.Player()
	cam := Camera(p.X, float64(viewW), grid.PixelWidth())

	f := Frame{
		Camera: cam,
		ViewW:  viewW,
		ViewH:  viewH,
		Tiles:  visibleTiles(grid, cam, viewW, viewH),
		HUD: HUD{
			Health:    p.Health,
			MaxHealth: p.MaxHealth,
			Score:     s.Score(),
		},
	}

	for _, e := range s.Enemies() {
		if !e.IsAlive() {
			continue
		}
		f.Entities = append(f.Entities, DrawIntent{
			Sprite:  SpriteEnemy,
			Frame:   e.Frame,
			Facing:  e.Facing(),
			Dest:    toScreen(e.Rect(), cam),
			Visible: true,
		})
	}

	s.Projectiles().Each(func(pr *entity.Projectile) {
		facing := 1
		if pr.VX < 0 {
			facing = -1
		}
		f.Entities = append(f.Entities, DrawIntent{
			Sprite:  SpriteProjectile,
			Facing:  facing,
			Dest:    toScreen(pr.Rect(), cam),
			Visible: true,
		})
	})

	f.Entities = append(f.Entities, DrawIntent{
		Sprite:  playerSheets[p.State],
		Frame:   p.SheetFrame(),
		Facing:  p.Facing,
		Dest:    toScreen(p.Rect(), cam),
		Visible: p.Visible(s.Tuning().Player.FlickerFrames),
	})

	return f
}

func visibleTiles(grid *entity.Grid, cam float64, viewW, viewH int) []TileIntent {
	ts := grid.TileSize
	first := int(cam) / ts
	last := (int(cam)+viewW)/ts + 1
	lastRow := viewH/ts + 1

	var tiles []TileIntent
	for row := 0; row <= lastRow && row < grid.Rows; row++ {
		for col := first; col <= last && col < grid.Cols; col++ {
			code := grid.Cell(col, row)
			if code == entity.TileEmpty {
				continue
			}
			tiles = append(tiles, TileIntent{
				Col:  col,
				Row:  row,
				Code: code,
				Dest: toScreen(entity.Rect{
					X: float64(col * ts),
					Y: float64(row * ts),
					W: float64(ts),
					H: float64(ts),
				}, cam),
			})
		}
	}
	return tiles
}

func toScreen(r entity.Rect, cam float64) entity.Rect {
	r.X -= cam
	return r
}
