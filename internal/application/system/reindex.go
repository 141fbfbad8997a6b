package system

import (
	"github.com/aw88/picross/internal/domain/grid"
	"github.com/aw88/picross/internal/ecs"
)

// ReindexSystem keeps the cell index in step with cell positions
type ReindexSystem struct {
	grid grid.Config
	// squares left empty since the last Update
	vacated map[grid.Coordinates]struct{}
}

// NewReindexSystem creates a reindex system for the given grid
func NewReindexSystem(cfg grid.Config) *ReindexSystem {
	return &ReindexSystem{
		grid:    cfg,
		vacated: make(map[grid.Coordinates]struct{}),
	}
}

// Vacate records that the cell indexed at c is gone, so another cell still
// sitting on c can take the square on the next Update.
func (s *ReindexSystem) Vacate(c grid.Coordinates) {
	s.vacated[c] = struct{}{}
}

// Update recomputes the coordinates of every cell moved since the last call
// and upserts it into the index. A cell moved off the grid is dropped from the
// index. A cell displaced from its square is indexed again once the square is
// vacated. Returns the number of moved cells processed.
func (s *ReindexSystem) Update(world *ecs.World, index *ecs.CellIndex) int {
	moved := world.TakeDirty()

	for _, id := range moved {
		cell, ok := world.CellData[id]
		if !ok {
			continue
		}

		c := s.grid.WorldToCell(world.Position[id].Vec())
		cell.Coordinates = c
		world.CellData[id] = cell

		if old, ok := index.CoordinatesOf(id); ok && old != c {
			s.Vacate(old)
		}
		if !s.grid.Contains(c) {
			index.Remove(id)
			continue
		}
		index.Insert(c, id)
	}

	s.refill(world, index)
	return len(moved)
}

// refill indexes unindexed cells whose square was vacated, first in spawn
// order wins.
func (s *ReindexSystem) refill(world *ecs.World, index *ecs.CellIndex) {
	if len(s.vacated) == 0 {
		return
	}
	for _, id := range world.Cells() {
		if _, indexed := index.CoordinatesOf(id); indexed {
			continue
		}
		c := world.CellData[id].Coordinates
		if _, ok := s.vacated[c]; !ok {
			continue
		}
		if _, taken := index.Lookup(c); taken {
			continue
		}
		index.Insert(c, id)
	}
	clear(s.vacated)
}
