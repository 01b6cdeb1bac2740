package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/nukem/internal/application/replay"
	"github.com/younwookim/nukem/internal/application/session"
	"github.com/younwookim/nukem/internal/infrastructure/audio"
	"github.com/younwookim/nukem/internal/infrastructure/terminal"
)

// runTerminal plays s in the terminal until the player quits
func runTerminal(s *session.Session, recordPath string, mute bool) error {
	var cues terminal.CuePlayer
	if !mute {
		c := audio.NewCues()
		if err := c.Init(); err != nil {
			log.Printf("Audio unavailable, playing silently: %v", err)
		} else {
			defer c.Close()
			cues = c
		}
	}

	var rec *replay.Recorder
	if recordPath != "" {
		rec = replay.NewRecorder(s.Level().ID)
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	// Log lines would tear the screen
	log.SetOutput(io.Discard)
	client := terminal.NewClient(s, cues, rec)
	client.Run(scr, s.Tuning().Display.Framerate)
	scr.Fini()
	log.SetOutput(os.Stderr)

	if rec = client.Recorder(); rec != nil && rec.FrameCount() > 0 {
		rec.Stop()
		if err := rec.Save(recordPath); err != nil {
			return fmt.Errorf("save recording: %w", err)
		}
		log.Printf("Saved %d frames to %s", rec.FrameCount(), recordPath)
	}
	return nil
}
