package grid

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellToWorld returns the world position of the center of cell c.
// Any value is accepted; callers range-check with Contains.
func (g Config) CellToWorld(c Coordinates) Vec {
	return Vec{
		X: g.origin.X + g.cellSize*(float64(c.X)-1) + 0.5*g.cellSize,
		Y: g.origin.Y + g.cellSize*(float64(c.Y)-1) + 0.5*g.cellSize,
	}
}

// WorldToCell returns the coordinates of the cell containing p. The result is
// not clamped: points left of or below the grid give 0 on that axis, points
// past the far edge give CellCount+1 or more.
func (g Config) WorldToCell(p Vec) Coordinates {
	return Coordinates{
		X: axisToCell(p.X, g.origin.X, g.cellSize),
		Y: axisToCell(p.Y, g.origin.Y, g.cellSize),
	}
}

func axisToCell(v, origin, size float64) uint32 {
	f := math.Floor((v-origin)/size) + 1
	switch {
	case math.IsNaN(f) || f < 1:
		return 0
	case f > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}

// ScreenToWorld converts a screen point to world space. The point is first
// recentered on the viewport midpoint, then mapped through the camera's world
// transform. Camera state is always passed in, never read from elsewhere.
func ScreenToWorld(screen, viewport Vec, camera ebiten.GeoM) Vec {
	x, y := camera.Apply(screen.X-0.5*viewport.X, screen.Y-0.5*viewport.Y)
	return Vec{X: x, Y: y}
}
