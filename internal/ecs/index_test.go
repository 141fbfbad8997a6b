package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aw88/picross/internal/domain/grid"
)

func TestCellIndex_InsertLookup(t *testing.T) {
	ix := NewCellIndex()

	ix.Insert(grid.At(1, 1), EntityID(7))

	id, ok := ix.Lookup(grid.At(1, 1))
	assert.True(t, ok)
	assert.Equal(t, EntityID(7), id)

	_, ok = ix.Lookup(grid.At(1, 2))
	assert.False(t, ok, "never-inserted coordinate must be absent")

	c, ok := ix.CoordinatesOf(EntityID(7))
	assert.True(t, ok)
	assert.Equal(t, grid.At(1, 1), c)
	assert.Equal(t, 1, ix.Len())
}

func TestCellIndex_ReinsertMovesEntry(t *testing.T) {
	ix := NewCellIndex()
	ix.Insert(grid.At(1, 1), EntityID(1))

	ix.Insert(grid.At(3, 4), EntityID(1))

	_, ok := ix.Lookup(grid.At(1, 1))
	assert.False(t, ok, "old coordinate must not stay stale")
	id, ok := ix.Lookup(grid.At(3, 4))
	assert.True(t, ok)
	assert.Equal(t, EntityID(1), id)
	assert.Equal(t, 1, ix.Len())
}

func TestCellIndex_OverwriteEvictsPreviousOccupant(t *testing.T) {
	ix := NewCellIndex()
	ix.Insert(grid.At(2, 2), EntityID(1))
	ix.Insert(grid.At(5, 5), EntityID(2))

	ix.Insert(grid.At(2, 2), EntityID(2))

	id, ok := ix.Lookup(grid.At(2, 2))
	assert.True(t, ok)
	assert.Equal(t, EntityID(2), id)

	_, ok = ix.CoordinatesOf(EntityID(1))
	assert.False(t, ok, "evicted entity must leave the reverse map")
	_, ok = ix.Lookup(grid.At(5, 5))
	assert.False(t, ok)
	assert.Equal(t, 1, ix.Len())
}

func TestCellIndex_InsertSameIsNoop(t *testing.T) {
	ix := NewCellIndex()
	ix.Insert(grid.At(2, 2), EntityID(1))
	ix.Insert(grid.At(2, 2), EntityID(1))

	assert.Equal(t, 1, ix.Len())
}

func TestCellIndex_Remove(t *testing.T) {
	ix := NewCellIndex()
	ix.Insert(grid.At(2, 2), EntityID(1))

	ix.Remove(EntityID(1))
	ix.Remove(EntityID(99))

	_, ok := ix.Lookup(grid.At(2, 2))
	assert.False(t, ok)
	assert.Zero(t, ix.Len())
}

func TestCellIndex_StaysBijective(t *testing.T) {
	ix := NewCellIndex()
	moves := []struct {
		c  grid.Coordinates
		id EntityID
	}{
		{grid.At(1, 1), 1}, {grid.At(1, 2), 2}, {grid.At(1, 1), 2},
		{grid.At(3, 3), 1}, {grid.At(1, 2), 3}, {grid.At(3, 3), 3},
	}

	for _, m := range moves {
		ix.Insert(m.c, m.id)

		assert.Equal(t, len(ix.byCoord), len(ix.byCell))
		for c, id := range ix.byCoord {
			back, ok := ix.byCell[id]
			assert.True(t, ok)
			assert.Equal(t, c, back)
		}
	}
}
