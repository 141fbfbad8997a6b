package ecs

import (
	"sort"

	"github.com/aw88/picross/internal/domain/grid"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// NilEntity is never handed out by NewEntity.
const NilEntity EntityID = 0

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position map[EntityID]Position
	CellData map[EntityID]Cell

	// Tags
	IsMarked map[EntityID]struct{}

	// Entities whose Position changed since the last TakeDirty
	dirty map[EntityID]struct{}

	// Cells in spawn order
	cells []EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:   1, // 0 is "nil"
		Position: make(map[EntityID]Position),
		CellData: make(map[EntityID]Cell),
		IsMarked: make(map[EntityID]struct{}),
		dirty:    make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.CellData, id)
	delete(w.IsMarked, id)
	delete(w.dirty, id)

	for i, c := range w.cells {
		if c == id {
			w.cells = append(w.cells[:i], w.cells[i+1:]...)
			break
		}
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// CreateCell creates a cell entity at the given world position.
func (w *World) CreateCell(c grid.Coordinates, pos grid.Vec, style grid.Style) EntityID {
	id := w.NewEntity()

	w.Position[id] = PositionOf(pos)
	w.CellData[id] = Cell{Coordinates: c, Style: style}
	w.cells = append(w.cells, id)

	return id
}

// SetPosition moves an entity and flags it for reindexing.
func (w *World) SetPosition(id EntityID, pos grid.Vec) bool {
	if !w.Exists(id) {
		return false
	}
	w.Position[id] = PositionOf(pos)
	w.dirty[id] = struct{}{}
	return true
}

// TakeDirty returns the entities moved since the last call, in ID order,
// and clears the set.
func (w *World) TakeDirty() []EntityID {
	if len(w.dirty) == 0 {
		return nil
	}
	ids := make([]EntityID, 0, len(w.dirty))
	for id := range w.dirty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	clear(w.dirty)
	return ids
}

// HasDirty reports whether any entity moved since the last TakeDirty.
func (w *World) HasDirty() bool {
	return len(w.dirty) > 0
}

// Cells returns cell entities in spawn order. The slice must not be modified.
func (w *World) Cells() []EntityID {
	return w.cells
}

// CountCells returns the number of live cells
func (w *World) CountCells() int {
	return len(w.cells)
}

// ToggleMark flips the marked tag of an entity and returns the new state.
func (w *World) ToggleMark(id EntityID) bool {
	if _, ok := w.IsMarked[id]; ok {
		delete(w.IsMarked, id)
		return false
	}
	w.IsMarked[id] = struct{}{}
	return true
}

// SetMarked sets the marked tag of an entity.
func (w *World) SetMarked(id EntityID, marked bool) {
	if marked {
		w.IsMarked[id] = struct{}{}
		return
	}
	delete(w.IsMarked, id)
}

// Marked reports whether an entity carries the marked tag.
func (w *World) Marked(id EntityID) bool {
	_, ok := w.IsMarked[id]
	return ok
}
