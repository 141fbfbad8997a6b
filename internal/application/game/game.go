// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aw88/picross/internal/application/scene"
	"github.com/aw88/picross/internal/application/state"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	logger  *log.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately. A nil logger discards
// output.
func New(initialScene scene.Scene, screenW, screenH int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		logger:  logger,
	}
	g.current.OnEnter()
	g.logger.Debug("entered phase", "phase", g.current.Phase())
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		from := g.current.Phase()
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.logger.Info("phase changed", "from", from, "to", g.current.Phase())
	}

	return nil
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

// Phase returns the phase of the current scene.
func (g *Game) Phase() state.Phase {
	return g.current.Phase()
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
