package grid

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrInvalidCamera is returned for a camera that cannot be inverted.
var ErrInvalidCamera = errors.New("invalid camera")

// Camera is an orthographic 2D camera looking at (X, Y) in world space.
// Zoom is screen pixels per world unit.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns a camera centered on the world origin at zoom 1.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Validate checks the camera can be used for both directions of transform.
func (c *Camera) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: camera is nil", ErrInvalidCamera)
	}
	if !(c.Zoom > 0) {
		return fmt.Errorf("%w: zoom %v must be positive", ErrInvalidCamera, c.Zoom)
	}
	return nil
}

// WorldTransform maps a viewport-centered screen offset (y down) to world
// space (y up).
func (c *Camera) WorldTransform() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(1/c.Zoom, -1/c.Zoom)
	m.Translate(c.X, c.Y)
	return m
}

// ScreenTransform maps world space to screen pixels for a viewport of the
// given size. It is the inverse of WorldTransform plus the recentering done
// by ScreenToWorld.
func (c *Camera) ScreenTransform(viewport Vec) ebiten.GeoM {
	m := c.WorldTransform()
	m.Invert()
	m.Translate(0.5*viewport.X, 0.5*viewport.Y)
	return m
}

// WorldToScreen is a convenience wrapper around ScreenTransform.
func (c *Camera) WorldToScreen(p, viewport Vec) Vec {
	m := c.ScreenTransform(viewport)
	x, y := m.Apply(p.X, p.Y)
	return Vec{X: x, Y: y}
}
