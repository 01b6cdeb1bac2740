// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/nukem/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	// replacements handed over from other goroutines (level hot reload)
	replace chan scene.Scene
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		replace: make(chan scene.Scene, 1),
	}
	g.current.OnEnter()
	return g
}

// Replace queues next to become the current scene at the start of the next
// Update. Safe to call from any goroutine; a newer replacement supersedes a
// pending one.
func (g *Game) Replace(next scene.Scene) {
	for {
		select {
		case g.replace <- next:
			return
		default:
		}
		select {
		case <-g.replace:
		default:
		}
	}
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	select {
	case next := <-g.replace:
		g.switchTo(next)
	default:
	}

	next, err := g.current.Update()
	if err != nil {
		return err
	}
	if next != nil {
		g.switchTo(next)
	}

	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
