package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/nukem/internal/application/render"
	"github.com/younwookim/nukem/internal/application/state"
	"github.com/younwookim/nukem/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{5, 5, 23, 255}
	colorSolid      = color.RGBA{38, 38, 68, 255}
	colorSolidEdge  = color.RGBA{52, 52, 90, 255}
	colorLadder     = color.RGBA{34, 240, 255, 255}
	colorSpike      = color.RGBA{200, 50, 50, 255}
	colorCheckpoint = color.RGBA{255, 59, 255, 255}
	colorGoal       = color.RGBA{120, 255, 120, 255}
	colorPickup     = color.RGBA{255, 215, 0, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorBullet     = color.RGBA{255, 221, 85, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorText       = color.RGBA{255, 181, 255, 255}
)

var spriteColors = map[render.Sprite]color.RGBA{
	render.SpritePlayerRun:   colorPlayer,
	render.SpritePlayerJump:  colorPlayer,
	render.SpritePlayerClimb: colorPlayer,
	render.SpritePlayerShoot: colorPlayer,
	render.SpriteEnemy:       colorEnemy,
	render.SpriteProjectile:  colorBullet,
}

func tileColor(code entity.TileCode) (color.RGBA, bool) {
	switch code {
	case entity.TileSolid:
		return colorSolid, true
	case entity.TileLadder:
		return colorLadder, true
	case entity.TileSpike:
		return colorSpike, true
	case entity.TileCheckpoint:
		return colorCheckpoint, true
	case entity.TileGoal:
		return colorGoal, true
	case entity.TilePickup:
		return colorPickup, true
	}
	return color.RGBA{}, false
}

func fillRect(dst *ebiten.Image, r entity.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawTiles(screen *ebiten.Image, tiles []render.TileIntent) {
	for _, t := range tiles {
		c, ok := tileColor(t.Code)
		if !ok {
			continue
		}
		d := t.Dest
		switch t.Code {
		case entity.TileSolid:
			fillRect(screen, d, c)
			fillRect(screen, entity.Rect{X: d.X, Y: d.Y + d.H - 4, W: d.W, H: 4}, colorSolidEdge)
		case entity.TileLadder:
			fillRect(screen, entity.Rect{X: d.X + d.W/2 - 2, Y: d.Y, W: 4, H: d.H}, c)
			fillRect(screen, entity.Rect{X: d.X + 2, Y: d.Y + 4, W: d.W - 4, H: 2}, c)
			fillRect(screen, entity.Rect{X: d.X + 2, Y: d.Y + 10, W: d.W - 4, H: 2}, c)
		case entity.TilePickup:
			fillRect(screen, entity.Rect{X: d.X + 4, Y: d.Y + 4, W: d.W - 8, H: d.H - 8}, c)
		default:
			fillRect(screen, d, c)
		}
	}
}

func (p *Playing) drawEntities(screen *ebiten.Image, intents []render.DrawIntent) {
	for _, di := range intents {
		if !di.Visible {
			continue
		}
		if sheet, ok := p.sheets[di.Sprite]; ok {
			drawSprite(screen, sheet, di)
			continue
		}
		fillRect(screen, di.Dest, spriteColors[di.Sprite])
	}
}

func drawSprite(screen, sheet *ebiten.Image, di render.DrawIntent) {
	b := sheet.Bounds()
	src := frameRect(di.Sprite, di.Frame, b.Dx(), b.Dy())
	if src.Dx() <= 0 || src.Dy() <= 0 {
		fillRect(screen, di.Dest, spriteColors[di.Sprite])
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(di.Dest.W/float64(src.Dx()), di.Dest.H/float64(src.Dy()))
	if di.Facing < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(di.Dest.W, 0)
	}
	op.GeoM.Translate(di.Dest.X, di.Dest.Y)
	screen.DrawImage(sheet.SubImage(src).(*ebiten.Image), op)
}

func (p *Playing) drawHUD(screen *ebiten.Image, hud render.HUD) {
	barX, barY := 8.0, 8.0
	barW, barH := 60.0, 6.0
	fillRect(screen, entity.Rect{X: barX, Y: barY, W: barW, H: barH}, colorHealthBG)
	if hud.MaxHealth > 0 && hud.Health > 0 {
		ratio := float64(hud.Health) / float64(hud.MaxHealth)
		fillRect(screen, entity.Rect{X: barX, Y: barY, W: barW * ratio, H: barH}, colorHealthFG)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(barX+barW+8, barY-4)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, fmt.Sprintf("SCORE %d", hud.Score), p.face, op)

	ebitenutil.DebugPrintAt(screen, "Arrows: Move | Z: Jump | X: Shoot | ESC: Pause | R: Restart", 8, p.screenH-16)
}

func (p *Playing) drawOverlay(screen *ebiten.Image) {
	var msg string
	alpha := float32(1)

	switch p.state {
	case state.StatePaused:
		fillRect(screen, entity.Rect{W: float64(p.screenW), H: float64(p.screenH)}, color.RGBA{0, 0, 0, 128})
		msg = "PAUSED - press ESC to resume"
	case state.StateCleared:
		msg = fmt.Sprintf("LEVEL CLEARED - score %d", p.lastScore)
		alpha = p.bannerAlpha
	case state.StateDefeated:
		msg = "DEFEATED"
		alpha = p.bannerAlpha
	default:
		return
	}

	w, _ := text.Measure(msg, p.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(p.screenW)/2-w/2, float64(p.screenH)/2-8)
	op.ColorScale.ScaleWithColor(colorText)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, msg, p.face, op)
}
