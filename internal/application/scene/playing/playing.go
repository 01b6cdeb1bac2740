// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/nukem/internal/application/render"
	"github.com/younwookim/nukem/internal/application/replay"
	"github.com/younwookim/nukem/internal/application/scene"
	"github.com/younwookim/nukem/internal/application/session"
	"github.com/younwookim/nukem/internal/application/state"
	"github.com/younwookim/nukem/internal/application/system"
)

// bannerSeconds is how long the cleared/defeated banner takes to fade
const bannerSeconds = 2

// Options configures a Playing scene
type Options struct {
	// Input defaults to the keyboard
	Input InputProvider
	// RecordPath enables input recording when set
	RecordPath string
	// Sheets may be nil; missing sprites fall back to rectangles
	Sheets Sheets
}

// Playing is the main gameplay scene
type Playing struct {
	session *session.Session
	state   state.GameState
	input   InputProvider
	sheets  Sheets
	face    text.Face

	screenW int
	screenH int
	dt      float32

	banner      *gween.Tween
	bannerAlpha float32
	lastScore   int

	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene over s
func New(s *session.Session, opts Options) *Playing {
	display := s.Tuning().Display
	p := &Playing{
		session:        s,
		state:          state.StatePlaying,
		input:          opts.Input,
		sheets:         opts.Sheets,
		face:           text.NewGoXFace(basicfont.Face7x13),
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		dt:             1 / float32(display.Framerate),
		recordFilename: opts.RecordPath,
	}
	if p.input == nil {
		p.input = KeyboardInput{}
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(s.Level().ID)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	c := p.input.Poll()

	if c.Pause {
		p.state = p.state.TogglePause()
		p.banner = nil
	}
	if c.Save {
		p.saveRecording()
	}
	if c.Restart {
		p.restart()
	}

	if !p.state.Running() {
		return nil, nil
	}

	p.updateBanner()

	if p.recorder != nil {
		p.recorder.RecordFrame(c.Input)
	}

	events := p.session.Step(c.Input)
	p.logEvents(events)

	if hasRoundEnd(events) {
		p.state = p.state.After(events)
		p.showBanner()
	}

	return nil, nil
}

func hasRoundEnd(events []system.Event) bool {
	for _, e := range events {
		if system.EndsRound(e) {
			return true
		}
	}
	return false
}

func (p *Playing) logEvents(events []system.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case system.LevelCleared:
			p.lastScore = ev.Score
			log.Printf("Level cleared (score: %d, frame: %d)", ev.Score, p.session.Frame())
		case system.PlayerDefeated:
			r := p.session.Player().Respawn
			log.Printf("Player defeated, respawning at (%.0f, %.0f)", r.X, r.Y)
		case system.CheckpointReached:
			log.Printf("Checkpoint reached at tile (%d, %d)", ev.Col, ev.Row)
		}
	}
}

func (p *Playing) showBanner() {
	p.banner = gween.New(1, 0, bannerSeconds, ease.InQuad)
	p.bannerAlpha = 1
}

func (p *Playing) updateBanner() {
	if p.banner == nil {
		return
	}
	alpha, finished := p.banner.Update(p.dt)
	p.bannerAlpha = alpha
	if finished {
		p.banner = nil
		p.state = state.StatePlaying
	}
}

func (p *Playing) restart() {
	p.session.Restart()
	p.state = state.StatePlaying
	p.banner = nil

	if p.recordFilename != "" {
		p.saveRecording()
		p.recorder = replay.NewRecorder(p.session.Level().ID)
		log.Printf("Recording restarted")
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	frame := render.Build(p.session, p.screenW, p.screenH)
	drawTiles(screen, frame.Tiles)
	p.drawEntities(screen, frame.Entities)
	p.drawHUD(screen, frame.HUD)
	p.drawOverlay(screen)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Playing %q (%s)", p.session.Level().Name, p.session.Level().ID)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
