// Package board owns one puzzle session: the solution, the cell arena and
// its index, and the flow from pointer press to cell selection.
package board

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aw88/picross/internal/application/system"
	"github.com/aw88/picross/internal/domain/grid"
	"github.com/aw88/picross/internal/domain/puzzle"
	"github.com/aw88/picross/internal/ecs"
)

var (
	// ErrNoSolution is returned when a board is built without a solution.
	ErrNoSolution = errors.New("board has no solution")
	// ErrSizeMismatch is returned when the solution does not fit the grid.
	ErrSizeMismatch = errors.New("solution size does not match grid")
)

// Selection is a click that landed on a cell, with the solution's verdict
// for that cell.
type Selection struct {
	Coordinates grid.Coordinates
	Cell        ecs.EntityID
	// Expected is true when the solution has this cell filled
	Expected bool
}

// Controller drives one puzzle session. It is the only writer of its world
// and index; the solution is never modified.
type Controller struct {
	grid     grid.Config
	solution *puzzle.Solution
	world    *ecs.World
	index    *ecs.CellIndex
	resolver *system.ClickResolver
	reindex  *system.ReindexSystem
	logger   *log.Logger
	started  bool

	// OnClick is called once for every emitted click event, selected or not
	OnClick func(system.ClickEvent)
	// OnSelect is called after OnClick when the click selected a cell
	OnSelect func(Selection)
}

// New creates a controller. The solution must be exactly as large as the
// grid. A nil logger discards output.
func New(cfg grid.Config, solution *puzzle.Solution, logger *log.Logger) (*Controller, error) {
	if cfg.CellCount() <= 0 {
		return nil, fmt.Errorf("board: %w: zero cell count", grid.ErrInvalidConfig)
	}
	if solution == nil {
		return nil, fmt.Errorf("board: %w", ErrNoSolution)
	}
	if size := solution.Size(); size.Width != cfg.CellCount() || size.Height != cfg.CellCount() {
		return nil, fmt.Errorf("board: %w: solution is %dx%d, grid has %d cells per side",
			ErrSizeMismatch, size.Width, size.Height, cfg.CellCount())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		grid:     cfg,
		solution: solution,
		world:    ecs.NewWorld(),
		index:    ecs.NewCellIndex(),
		resolver: system.NewClickResolver(cfg),
		reindex:  system.NewReindexSystem(cfg),
		logger:   logger,
	}, nil
}

// Start populates the grid. Calling it again has no effect.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true

	ids := system.SpawnCells(c.grid, c.world, c.index)
	c.logger.Info("board ready", "cells", len(ids), "side", c.grid.CellCount())
}

// Reindex applies pending cell moves to the index.
func (c *Controller) Reindex() int {
	n := c.reindex.Update(c.world, c.index)
	if n > 0 {
		c.logger.Debug("reindexed cells", "count", n)
	}
	return n
}

// HandlePointer processes one frame of pointer input. Pending moves are
// indexed before the click is resolved. Returns the emitted event, if any.
func (c *Controller) HandlePointer(in system.PointerInput, viewport grid.Vec, camera ebiten.GeoM) (system.ClickEvent, bool) {
	c.Reindex()

	ev, ok := c.resolver.Resolve(in, viewport, camera, c.index)
	if !ok {
		return system.ClickEvent{}, false
	}
	c.dispatch(ev)
	return ev, true
}

// ClickWorld resolves a press at a world position, as if it came from the
// pointer.
func (c *Controller) ClickWorld(p grid.Vec) system.ClickEvent {
	c.Reindex()

	ev := c.resolver.ResolveWorld(p, c.index)
	c.dispatch(ev)
	return ev
}

func (c *Controller) dispatch(ev system.ClickEvent) {
	if c.OnClick != nil {
		c.OnClick(ev)
	}
	if !ev.Selected {
		c.logger.Debug("click hit no cell")
		return
	}

	cell, ok := c.world.CellData[ev.Cell]
	if !ok {
		return
	}
	sel := Selection{
		Coordinates: cell.Coordinates,
		Cell:        ev.Cell,
		Expected:    c.Expected(cell.Coordinates),
	}
	c.logger.Debug("cell selected", "coords", sel.Coordinates, "expected", sel.Expected)

	if c.OnSelect != nil {
		c.OnSelect(sel)
	}
}

// Expected reports whether the solution has the cell at coords filled.
// Row 1 (bottom) maps to the last solution row.
func (c *Controller) Expected(coords grid.Coordinates) bool {
	x := int(coords.X) - 1
	y := c.grid.CellCount() - int(coords.Y)
	return c.solution.Lookup(x, y)
}

// CellAt returns the cell indexed at coords.
func (c *Controller) CellAt(coords grid.Coordinates) (ecs.EntityID, bool) {
	return c.index.Lookup(coords)
}

// MoveCell moves a cell to a new world position. Nothing in the game loop
// moves cells; this is the entry point for hosts that do, such as editors and
// animations. The index catches up on the next Reindex.
func (c *Controller) MoveCell(id ecs.EntityID, pos grid.Vec) bool {
	return c.world.SetPosition(id, pos)
}

// RemoveCell destroys a cell and drops it from the index. A cell displaced
// from the same square is indexed again on the next Reindex.
func (c *Controller) RemoveCell(id ecs.EntityID) bool {
	if _, ok := c.world.CellData[id]; !ok {
		return false
	}
	if coords, ok := c.index.CoordinatesOf(id); ok {
		c.index.Remove(id)
		c.reindex.Vacate(coords)
	}
	c.world.DestroyEntity(id)
	c.logger.Debug("cell removed", "cell", id)
	return true
}

// Grid returns the coordinate model.
func (c *Controller) Grid() grid.Config {
	return c.grid
}

// Solution returns the target pattern.
func (c *Controller) Solution() *puzzle.Solution {
	return c.solution
}

// Lines returns the grid-line render directives.
func (c *Controller) Lines() []grid.Line {
	return c.grid.Lines()
}
