// Package grid holds the puzzle's coordinate model: cell indices, world
// positions and screen positions, and the pure conversions between them.
//
// World space is y-up with the grid's lower-left corner at Origin. Cells are
// addressed by 1-based Coordinates (X = column, Y = row).
package grid

import (
	"errors"
	"fmt"
)

// DefaultMinorLineThickness is the width of a regular grid line in world units.
// Major lines (every fifth) are twice as thick.
const DefaultMinorLineThickness = 2.0

// ErrInvalidConfig is returned when a grid is built from non-positive sizes.
var ErrInvalidConfig = errors.New("invalid grid config")

// Vec is a 2D point or size in world or screen units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Config is the fixed parameter set of one puzzle session's coordinate space.
// The zero value is not usable; build one with NewConfig.
type Config struct {
	cellSize  float64
	cellCount int
	center    Vec
	origin    Vec
	minorLine float64
}

// NewConfig creates a grid of cellCount×cellCount cells of cellSize world
// units, centered on center. The origin is derived here and nowhere else.
func NewConfig(cellSize float64, cellCount int, center Vec) (Config, error) {
	if !(cellSize > 0) {
		return Config{}, fmt.Errorf("%w: cell size %v must be positive", ErrInvalidConfig, cellSize)
	}
	if cellCount <= 0 {
		return Config{}, fmt.Errorf("%w: cell count %d must be positive", ErrInvalidConfig, cellCount)
	}

	half := 0.5 * float64(cellCount) * cellSize
	return Config{
		cellSize:  cellSize,
		cellCount: cellCount,
		center:    center,
		origin:    Vec{X: center.X - half, Y: center.Y - half},
		minorLine: DefaultMinorLineThickness,
	}, nil
}

// WithLineThickness returns a copy using the given minor line thickness.
// Non-positive values keep the current thickness.
func (g Config) WithLineThickness(minor float64) Config {
	if minor > 0 {
		g.minorLine = minor
	}
	return g
}

// CellSize returns the edge length of one cell in world units.
func (g Config) CellSize() float64 { return g.cellSize }

// CellCount returns the number of cells per side.
func (g Config) CellCount() int { return g.cellCount }

// Center returns the world position of the grid's center.
func (g Config) Center() Vec { return g.center }

// Origin returns the world position of the grid's lower-left corner.
func (g Config) Origin() Vec { return g.origin }

// Size returns the grid's edge length in world units.
func (g Config) Size() float64 { return float64(g.cellCount) * g.cellSize }

// MinorLineThickness returns the thickness of non-major grid lines.
func (g Config) MinorLineThickness() float64 { return g.minorLine }

// MajorLineThickness returns the thickness of every fifth grid line.
func (g Config) MajorLineThickness() float64 { return 2 * g.minorLine }

// Contains reports whether c addresses a cell of this grid.
func (g Config) Contains(c Coordinates) bool {
	n := uint32(g.cellCount)
	return c.X >= 1 && c.X <= n && c.Y >= 1 && c.Y <= n
}
