// Package terminal draws render frames as glyphs and turns key presses into
// held input for the tcell client.
package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/nukem/internal/application/render"
	"github.com/younwookim/nukem/internal/domain/entity"
)

// Glyph is a rune and its style
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

var tileGlyphs = map[entity.TileCode]Glyph{
	entity.TileSolid:      {'█', tcell.StyleDefault.Foreground(tcell.Color(51))},
	entity.TileLadder:     {'H', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	entity.TileSpike:      {'^', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	entity.TileCheckpoint: {'C', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	entity.TileGoal:       {'G', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)},
	entity.TilePickup:     {'*', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
}

var spriteGlyphs = map[render.Sprite]Glyph{
	render.SpritePlayerRun:   {'@', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	render.SpritePlayerJump:  {'@', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	render.SpritePlayerClimb: {'@', tcell.StyleDefault.Foreground(tcell.ColorLightGray)},
	render.SpritePlayerShoot: {'@', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	render.SpriteEnemy:       {'E', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	render.SpriteProjectile:  {'-', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
}

// TileGlyph returns the glyph for a tile code; empty tiles report false
func TileGlyph(code entity.TileCode) (Glyph, bool) {
	g, ok := tileGlyphs[code]
	return g, ok
}

// SpriteGlyph returns the glyph for a sprite, '?' for unknown ones
func SpriteGlyph(s render.Sprite) Glyph {
	if g, ok := spriteGlyphs[s]; ok {
		return g
	}
	return Glyph{'?', tcell.StyleDefault}
}

// View maps a terminal to pixel space: one cell per tile, with the bottom
// row kept for the HUD
type View struct {
	TileSize int
}

// Pixels returns the render view size for a cols×rows terminal
func (v View) Pixels(cols, rows int) (w, h int) {
	rows--
	if rows < 0 {
		rows = 0
	}
	return cols * v.TileSize, rows * v.TileSize
}

// Draw clears scr and paints f. It does not call Show.
func (v View) Draw(scr tcell.Screen, f render.Frame) {
	scr.Clear()
	cols, rows := scr.Size()
	playRows := rows - 1

	for _, t := range f.Tiles {
		g, ok := TileGlyph(t.Code)
		if !ok {
			continue
		}
		v.fill(scr, t.Dest, g, cols, playRows)
	}

	for _, e := range f.Entities {
		if !e.Visible {
			continue
		}
		v.fill(scr, e.Dest, SpriteGlyph(e.Sprite), cols, playRows)
	}

	drawText(scr, 0, rows-1, hudLine(f.HUD), tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// fill covers every cell that r touches
func (v View) fill(scr tcell.Screen, r entity.Rect, g Glyph, cols, rows int) {
	ts := float64(v.TileSize)
	x0, y0 := int(math.Floor(r.X/ts)), int(math.Floor(r.Y/ts))
	x1, y1 := int(math.Floor((r.X+r.W-1)/ts)), int(math.Floor((r.Y+r.H-1)/ts))

	for y := y0; y <= y1; y++ {
		if y < 0 || y >= rows {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= cols {
				continue
			}
			scr.SetContent(x, y, g.Rune, nil, g.Style)
		}
	}
}

func hudLine(h render.HUD) string {
	hearts := make([]rune, 0, h.MaxHealth)
	for i := 0; i < h.MaxHealth; i++ {
		if i < h.Health {
			hearts = append(hearts, '♥')
		} else {
			hearts = append(hearts, '·')
		}
	}
	return fmt.Sprintf("HP %s  SCORE %d", string(hearts), h.Score)
}

func drawText(scr tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}

// DrawBanner centers msg on the middle play row
func DrawBanner(scr tcell.Screen, msg string) {
	cols, rows := scr.Size()
	n := len([]rune(msg))
	x := (cols - n) / 2
	if x < 0 {
		x = 0
	}
	drawText(scr, x, (rows-1)/2, msg, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
}
