package ecs

import "github.com/aw88/picross/internal/domain/grid"

// CellIndex maps grid coordinates to the cell entity occupying them.
// Every coordinate maps to at most one entity and every entity is held under
// at most one coordinate.
type CellIndex struct {
	byCoord map[grid.Coordinates]EntityID
	byCell  map[EntityID]grid.Coordinates
}

// NewCellIndex creates an empty index
func NewCellIndex() *CellIndex {
	return &CellIndex{
		byCoord: make(map[grid.Coordinates]EntityID),
		byCell:  make(map[EntityID]grid.Coordinates),
	}
}

// Insert maps c to id, overwriting any previous occupant of c. If id was
// already indexed under another coordinate, that entry is removed first.
func (ix *CellIndex) Insert(c grid.Coordinates, id EntityID) {
	if old, ok := ix.byCell[id]; ok {
		if old == c {
			return
		}
		delete(ix.byCoord, old)
	}
	if prev, ok := ix.byCoord[c]; ok && prev != id {
		delete(ix.byCell, prev)
	}

	ix.byCoord[c] = id
	ix.byCell[id] = c
}

// Lookup returns the entity at c.
func (ix *CellIndex) Lookup(c grid.Coordinates) (EntityID, bool) {
	id, ok := ix.byCoord[c]
	return id, ok
}

// CoordinatesOf returns the coordinate id is indexed under.
func (ix *CellIndex) CoordinatesOf(id EntityID) (grid.Coordinates, bool) {
	c, ok := ix.byCell[id]
	return c, ok
}

// Remove drops id from the index.
func (ix *CellIndex) Remove(id EntityID) {
	if c, ok := ix.byCell[id]; ok {
		delete(ix.byCoord, c)
		delete(ix.byCell, id)
	}
}

// Len returns the number of indexed cells
func (ix *CellIndex) Len() int {
	return len(ix.byCoord)
}
