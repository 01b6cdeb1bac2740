package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/nukem/internal/application/render"
	"github.com/younwookim/nukem/internal/application/replay"
	"github.com/younwookim/nukem/internal/application/session"
	"github.com/younwookim/nukem/internal/application/state"
	"github.com/younwookim/nukem/internal/application/system"
)

// CuePlayer receives each frame's events
type CuePlayer interface {
	Play(events []system.Event)
}

// Client runs a session against a tcell screen
type Client struct {
	session  *session.Session
	keys     *KeyHold
	view     View
	cues     CuePlayer
	recorder *replay.Recorder

	state        state.GameState
	bannerFrames int
	bannerLen    int
	lastScore    int
}

// NewClient wires s to a key-hold table. cues and recorder may be nil.
func NewClient(s *session.Session, cues CuePlayer, recorder *replay.Recorder) *Client {
	return &Client{
		session:   s,
		keys:      NewKeyHold(DefaultHoldFrames),
		view:      View{TileSize: s.Grid().TileSize},
		cues:      cues,
		recorder:  recorder,
		state:     state.StatePlaying,
		bannerLen: 2 * s.Tuning().Display.Framerate,
	}
}

// State returns the overlay state
func (c *Client) State() state.GameState {
	return c.state
}

// Recorder returns the active recorder, or nil
func (c *Client) Recorder() *replay.Recorder {
	return c.recorder
}

// Handle applies one terminal event and reports whether the client should quit
func (c *Client) Handle(scr tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.Press(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		scr.Sync()
	}
	return false
}

// Press applies one key and reports whether the client should quit
func (c *Client) Press(key tcell.Key, r rune) bool {
	switch c.keys.Press(key, r) {
	case CommandQuit:
		return true
	case CommandRestart:
		c.session.Restart()
		c.keys.Release()
		if c.recorder != nil {
			// A recording only replays from a fresh start
			c.recorder = replay.NewRecorder(c.session.Level().ID)
		}
		c.state = state.StatePlaying
		c.bannerFrames = 0
	case CommandPause:
		c.state = c.state.TogglePause()
		c.bannerFrames = 0
		c.keys.Release()
	}
	return false
}

// Tick advances one frame unless paused
func (c *Client) Tick() []system.Event {
	if !c.state.Running() {
		return nil
	}

	if c.bannerFrames > 0 {
		c.bannerFrames--
		if c.bannerFrames == 0 {
			c.state = state.StatePlaying
		}
	}

	in := c.keys.Tick()
	if c.recorder != nil {
		c.recorder.RecordFrame(in)
	}

	events := c.session.Step(in)
	if c.cues != nil {
		c.cues.Play(events)
	}

	for _, e := range events {
		if cleared, ok := e.(system.LevelCleared); ok {
			c.lastScore = cleared.Score
		}
	}
	if endsRound(events) {
		c.state = c.state.After(events)
		c.bannerFrames = c.bannerLen
	}
	return events
}

// Draw paints the current frame and any banner, then shows it
func (c *Client) Draw(scr tcell.Screen) {
	cols, rows := scr.Size()
	w, h := c.view.Pixels(cols, rows)
	c.view.Draw(scr, render.Build(c.session, w, h))

	switch c.state {
	case state.StatePaused:
		DrawBanner(scr, "PAUSED")
	case state.StateCleared:
		DrawBanner(scr, fmt.Sprintf("LEVEL CLEARED - score %d", c.lastScore))
	case state.StateDefeated:
		DrawBanner(scr, "DEFEATED")
	}
	scr.Show()
}

// Run drives the client at framerate until quit or the screen closes
func (c *Client) Run(scr tcell.Screen, framerate int) {
	events := PollEvents(scr)
	ticker := time.NewTicker(time.Second / time.Duration(framerate))
	defer ticker.Stop()

	for {
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok || c.Handle(scr, ev) {
					return
				}
			default:
				break drain
			}
		}

		c.Tick()
		c.Draw(scr)
		<-ticker.C
	}
}

func endsRound(events []system.Event) bool {
	for _, e := range events {
		if system.EndsRound(e) {
			return true
		}
	}
	return false
}
