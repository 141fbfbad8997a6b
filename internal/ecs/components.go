package ecs

import "github.com/aw88/picross/internal/domain/grid"

// Position is an entity's world-space render position (cell center).
type Position struct {
	X, Y float64
}

// Vec returns the position as a grid vector.
func (p Position) Vec() grid.Vec { return grid.Vec{X: p.X, Y: p.Y} }

// PositionOf converts a grid vector to a Position.
func PositionOf(v grid.Vec) Position { return Position{X: v.X, Y: v.Y} }

// Cell marks an entity as a grid cell. Coordinates is kept in sync with
// Position by the reindex system.
type Cell struct {
	Coordinates grid.Coordinates
	Style       grid.Style
}
