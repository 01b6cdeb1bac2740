package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/nukem/internal/application/system"
)

// Action is a held game input
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionShoot
)

// Command is a one-shot client key
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
	CommandPause
)

// DefaultHoldFrames covers the gap before a terminal's key repeat kicks in
const DefaultHoldFrames = 9

var keyActions = map[tcell.Key]Action{
	tcell.KeyLeft:  ActionLeft,
	tcell.KeyRight: ActionRight,
	tcell.KeyUp:    ActionUp,
	tcell.KeyDown:  ActionDown,
}

var runeActions = map[rune]Action{
	'a': ActionLeft,
	'd': ActionRight,
	'w': ActionUp,
	's': ActionDown,
	'z': ActionJump,
	' ': ActionJump,
	'x': ActionShoot,
	'j': ActionShoot,
}

var runeCommands = map[rune]Command{
	'q': CommandQuit,
	'r': CommandRestart,
	'p': CommandPause,
}

// KeyHold turns key presses into held input. Terminals report presses and
// repeats but never releases, so a key counts as held for a fixed number of
// frames after its last press.
type KeyHold struct {
	hold  int
	frame int
	last  map[Action]int
}

// NewKeyHold creates a table that holds each key for hold frames
func NewKeyHold(hold int) *KeyHold {
	if hold < 1 {
		hold = 1
	}
	return &KeyHold{
		hold: hold,
		last: make(map[Action]int),
	}
}

// Press records a key. Rune keys are matched case-insensitively.
func (k *KeyHold) Press(key tcell.Key, r rune) Command {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return CommandQuit
	}
	if a, ok := keyActions[key]; ok {
		k.last[a] = k.frame
		return CommandNone
	}
	if key != tcell.KeyRune {
		return CommandNone
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if c, ok := runeCommands[r]; ok {
		return c
	}
	if a, ok := runeActions[r]; ok {
		k.last[a] = k.frame
	}
	return CommandNone
}

// Held reports whether a was pressed within the hold window
func (k *KeyHold) Held(a Action) bool {
	at, ok := k.last[a]
	return ok && k.frame-at < k.hold
}

// Tick returns this frame's input and advances the frame
func (k *KeyHold) Tick() system.InputState {
	in := system.InputState{
		Left:  k.Held(ActionLeft),
		Right: k.Held(ActionRight),
		Up:    k.Held(ActionUp),
		Down:  k.Held(ActionDown),
		Jump:  k.Held(ActionJump),
		Shoot: k.Held(ActionShoot),
	}
	k.frame++
	return in
}

// Release drops every held key
func (k *KeyHold) Release() {
	k.last = make(map[Action]int)
}

// PollEvents feeds scr's events into a channel until the screen is finalized
func PollEvents(scr tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, 10)
	go func() {
		defer close(events)
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}
