package system

import (
	"github.com/aw88/picross/internal/domain/grid"
	"github.com/aw88/picross/internal/ecs"
)

// SpawnCells creates CellCount×CellCount cells in row-major order (row 1
// first) and indexes each one as it is created.
func SpawnCells(cfg grid.Config, world *ecs.World, index *ecs.CellIndex) []ecs.EntityID {
	n := cfg.CellCount()
	ids := make([]ecs.EntityID, 0, n*n)

	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			c := grid.At(uint32(col), uint32(row))
			id := world.CreateCell(c, cfg.CellToWorld(c), grid.StyleOf(row, col))
			index.Insert(c, id)
			ids = append(ids, id)
		}
	}

	return ids
}
