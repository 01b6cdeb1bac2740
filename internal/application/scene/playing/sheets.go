package playing

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/nukem/internal/application/render"
)

// Sheets holds the sprite sheets that could be loaded.
// Sprites without a sheet are drawn as flat rectangles.
type Sheets map[render.Sprite]*ebiten.Image

// sheetFiles are the file names looked up by LoadSheets
var sheetFiles = map[render.Sprite]string{
	render.SpritePlayerRun:   "nukem_run.png",
	render.SpritePlayerJump:  "nukem_jump.png",
	render.SpritePlayerClimb: "nukem_climb.png",
	render.SpritePlayerShoot: "nukem_shoot.png",
	render.SpriteEnemy:       "enemy.png",
	render.SpriteProjectile:  "bullet.png",
}

// sheetFrames is how many frames sit side by side on each sheet
var sheetFrames = map[render.Sprite]int{
	render.SpritePlayerRun:   6,
	render.SpritePlayerJump:  4,
	render.SpritePlayerClimb: 4,
	render.SpritePlayerShoot: 4,
	render.SpriteEnemy:       2,
	render.SpriteProjectile:  1,
}

// LoadSheets decodes every sheet present in fsys.
// Missing files are skipped; a file that exists but does not decode is an error.
func LoadSheets(fsys fs.FS) (Sheets, error) {
	sheets := make(Sheets)
	for sprite, name := range sheetFiles {
		f, err := fsys.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}

		img, _, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
		sheets[sprite] = ebiten.NewImageFromImage(img)
	}
	return sheets, nil
}

// frameRect returns the source rectangle of frame on a sheet of w×h pixels
func frameRect(sprite render.Sprite, frame, w, h int) image.Rectangle {
	n := sheetFrames[sprite]
	if n <= 0 {
		n = 1
	}
	fw := w / n
	x := (frame % n) * fw
	return image.Rect(x, 0, x+fw, h)
}
