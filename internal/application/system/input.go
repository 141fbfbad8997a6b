package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/aw88/picross/internal/domain/grid"
)

// InputSystem reads pointer input from ebiten once per frame
type InputSystem struct {
	button ebiten.MouseButton
}

// NewInputSystem creates an input system selecting with the left button
func NewInputSystem() *InputSystem {
	return &InputSystem{button: ebiten.MouseButtonLeft}
}

// PointerInput holds the pointer state for one frame
type PointerInput struct {
	// Pressed is true only on the frame the primary button goes down
	Pressed bool
	X, Y    float64
	// HasCursor is false when the cursor is outside the window
	HasCursor bool
}

// Screen returns the cursor position as a vector.
func (p PointerInput) Screen() grid.Vec {
	return grid.Vec{X: p.X, Y: p.Y}
}

// GetInput reads the current pointer state. viewport is the logical screen
// size returned by Layout.
func (s *InputSystem) GetInput(viewport grid.Vec) PointerInput {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	return PointerInput{
		Pressed:   inpututil.IsMouseButtonJustPressed(s.button),
		X:         x,
		Y:         y,
		HasCursor: InViewport(x, y, viewport),
	}
}

// InViewport reports whether a screen point lies inside the viewport.
func InViewport(x, y float64, viewport grid.Vec) bool {
	return x >= 0 && y >= 0 && x < viewport.X && y < viewport.Y
}
