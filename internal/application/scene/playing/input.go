package playing

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/nukem/internal/application/replay"
	"github.com/younwookim/nukem/internal/application/system"
)

// Controls is one frame of player input plus host commands
type Controls struct {
	Input   system.InputState
	Pause   bool
	Restart bool
	Save    bool
}

// InputProvider is polled once per frame
type InputProvider interface {
	Poll() Controls
}

// KeyboardInput reads the ebiten keyboard.
// Arrows or WASD move and climb, Z/Space jump, X/J shoot,
// Esc pauses, R restarts, F5 saves the recording.
type KeyboardInput struct{}

// Poll implements InputProvider
func (KeyboardInput) Poll() Controls {
	return Controls{
		Input:   inputFromKeys(ebiten.IsKeyPressed),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

func inputFromKeys(pressed func(ebiten.Key) bool) system.InputState {
	anyOf := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}

	return system.InputState{
		Left:  anyOf(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyOf(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    anyOf(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyOf(ebiten.KeyArrowDown, ebiten.KeyS),
		Jump:  anyOf(ebiten.KeyZ, ebiten.KeySpace),
		Shoot: anyOf(ebiten.KeyX, ebiten.KeyJ),
	}
}

// ReplayInput plays back a recording. Once it runs out the player idles.
type ReplayInput struct {
	replayer *replay.Replayer
	finished bool
}

// NewReplayInput wraps r as an InputProvider
func NewReplayInput(r *replay.Replayer) *ReplayInput {
	return &ReplayInput{replayer: r}
}

// Poll implements InputProvider
func (r *ReplayInput) Poll() Controls {
	in, ok := r.replayer.GetInput()
	if !ok && !r.finished {
		r.finished = true
		log.Printf("Replay finished (%d frames)", r.replayer.TotalFrames())
	}
	return Controls{Input: in}
}

// Finished reports whether playback has run out
func (r *ReplayInput) Finished() bool {
	return r.finished
}
