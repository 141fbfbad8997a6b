package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aw88/picross/internal/domain/grid"
	"github.com/aw88/picross/internal/ecs"
)

// ClickEvent is the outcome of one primary-button press. When Selected is
// false the press hit no cell and the other fields are zero.
type ClickEvent struct {
	Coordinates grid.Coordinates
	Cell        ecs.EntityID
	Selected    bool
}

// ClickResolver turns a pointer press into a cell selection
type ClickResolver struct {
	grid grid.Config
}

// NewClickResolver creates a resolver for the given grid
func NewClickResolver(cfg grid.Config) *ClickResolver {
	return &ClickResolver{grid: cfg}
}

// Resolve handles one frame of pointer input. It returns false when there is
// nothing to report: the button was not pressed this frame, or the cursor is
// outside the window. Otherwise exactly one event is returned, selected or not.
// viewport and camera must be read fresh for the frame.
func (r *ClickResolver) Resolve(in PointerInput, viewport grid.Vec, camera ebiten.GeoM, index *ecs.CellIndex) (ClickEvent, bool) {
	if !in.Pressed || !in.HasCursor {
		return ClickEvent{}, false
	}

	world := grid.ScreenToWorld(in.Screen(), viewport, camera)
	return r.ResolveWorld(world, index), true
}

// ResolveWorld resolves a world-space point against the index.
func (r *ClickResolver) ResolveWorld(p grid.Vec, index *ecs.CellIndex) ClickEvent {
	c := r.grid.WorldToCell(p)
	if !r.grid.Contains(c) {
		return ClickEvent{}
	}

	id, ok := index.Lookup(c)
	if !ok {
		return ClickEvent{}
	}

	return ClickEvent{Coordinates: c, Cell: id, Selected: true}
}
