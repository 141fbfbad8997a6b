package board

import (
	"github.com/aw88/picross/internal/domain/grid"
)

// Placement is a render directive for one cell.
type Placement struct {
	Coordinates grid.Coordinates
	Center      grid.Vec
	Size        float64
	Style       grid.Style
	Marked      bool
}

// Placements returns one directive per cell, in spawn order.
func (c *Controller) Placements() []Placement {
	cells := c.world.Cells()
	out := make([]Placement, 0, len(cells))
	for _, id := range cells {
		cell := c.world.CellData[id]
		out = append(out, Placement{
			Coordinates: cell.Coordinates,
			Center:      c.world.Position[id].Vec(),
			Size:        c.grid.CellSize(),
			Style:       cell.Style,
			Marked:      c.world.Marked(id),
		})
	}
	return out
}

// ToggleMark flips the mark on the cell at coords. ok is false when no cell
// is indexed there.
func (c *Controller) ToggleMark(coords grid.Coordinates) (marked, ok bool) {
	id, ok := c.index.Lookup(coords)
	if !ok {
		return false, false
	}
	return c.world.ToggleMark(id), true
}

// RestoreMarks marks the cells at the given coordinates and returns how many
// were found.
func (c *Controller) RestoreMarks(coords []grid.Coordinates) int {
	n := 0
	for _, cc := range coords {
		if id, ok := c.index.Lookup(cc); ok {
			c.world.SetMarked(id, true)
			n++
		}
	}
	return n
}

// MarkedCoordinates returns the coordinates of marked cells, in spawn order.
func (c *Controller) MarkedCoordinates() []grid.Coordinates {
	var out []grid.Coordinates
	for _, id := range c.world.Cells() {
		if c.world.Marked(id) {
			out = append(out, c.world.CellData[id].Coordinates)
		}
	}
	return out
}

