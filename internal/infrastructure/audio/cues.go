// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/nukem/internal/application/system"
)

const sampleRate = beep.SampleRate(48000)

// Cue is one sine blip
type Cue struct {
	Freq     float64
	Duration time.Duration
}

// CueFor maps an event to its cue. Events without a sound report false.
func CueFor(e system.Event) (Cue, bool) {
	switch ev := e.(type) {
	case system.ShotFired:
		return Cue{Freq: 880, Duration: 40 * time.Millisecond}, true
	case system.PickupCollected:
		return Cue{Freq: 1320, Duration: 80 * time.Millisecond}, true
	case system.EnemyHit:
		if ev.Killed {
			return Cue{Freq: 220, Duration: 150 * time.Millisecond}, true
		}
		return Cue{Freq: 440, Duration: 60 * time.Millisecond}, true
	case system.PlayerHurt:
		return Cue{Freq: 150, Duration: 120 * time.Millisecond}, true
	case system.CheckpointReached:
		return Cue{Freq: 660, Duration: 150 * time.Millisecond}, true
	case system.LevelCleared:
		return Cue{Freq: 1046.5, Duration: 400 * time.Millisecond}, true
	case system.PlayerDefeated:
		return Cue{Freq: 110, Duration: 400 * time.Millisecond}, true
	}
	return Cue{}, false
}

// Cues owns the speaker and a mixer that cue streams are added to
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCues creates a silent cue player; call Init to open the speaker
func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Init opens the audio device
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the cues for events. It is a no-op until Init succeeds.
func (c *Cues) Play(events []system.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s := Streamer(events)
	if s == nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending cues and releases the device
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Streamer mixes the cues for events, or returns nil when none sound
func Streamer(events []system.Event) beep.Streamer {
	var streams []beep.Streamer
	for _, e := range events {
		cue, ok := CueFor(e)
		if !ok {
			continue
		}
		if s := cueStreamer(cue); s != nil {
			streams = append(streams, s)
		}
	}
	switch len(streams) {
	case 0:
		return nil
	case 1:
		return streams[0]
	}
	return beep.Mix(streams...)
}

func cueStreamer(c Cue) beep.Streamer {
	tone, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		return nil
	}
	// Quarter volume
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(c.Duration), tone),
		Base:     2,
		Volume:   -2,
	}
}
