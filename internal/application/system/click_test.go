package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aw88/picross/internal/domain/grid"
	"github.com/aw88/picross/internal/ecs"
)

func createTestGrid(t *testing.T) grid.Config {
	t.Helper()
	cfg, err := grid.NewConfig(32, 10, grid.Vec{})
	require.NoError(t, err)
	return cfg
}

func createTestBoard(t *testing.T) (grid.Config, *ecs.World, *ecs.CellIndex) {
	t.Helper()
	cfg := createTestGrid(t)
	world := ecs.NewWorld()
	index := ecs.NewCellIndex()
	SpawnCells(cfg, world, index)
	return cfg, world, index
}

var testViewport = grid.Vec{X: 640, Y: 480}

// worldCamera is the identity world transform with ebiten's y-down flip.
func worldCamera() ebiten.GeoM {
	return grid.NewCamera().WorldTransform()
}

func TestClickResolver_ResolveWorld(t *testing.T) {
	cfg, _, index := createTestBoard(t)
	r := NewClickResolver(cfg)

	t.Run("first cell center", func(t *testing.T) {
		ev := r.ResolveWorld(grid.Vec{X: -144, Y: -144}, index)
		require.True(t, ev.Selected)
		assert.Equal(t, grid.At(1, 1), ev.Coordinates)

		id, _ := index.Lookup(grid.At(1, 1))
		assert.Equal(t, id, ev.Cell)
	})

	t.Run("last cell center", func(t *testing.T) {
		ev := r.ResolveWorld(grid.Vec{X: 144, Y: 144}, index)
		require.True(t, ev.Selected)
		assert.Equal(t, grid.At(10, 10), ev.Coordinates)
	})

	t.Run("left of grid is absent", func(t *testing.T) {
		ev := r.ResolveWorld(grid.Vec{X: -161, Y: 0}, index)
		assert.False(t, ev.Selected)
		assert.Equal(t, ClickEvent{}, ev)
	})
}

func TestClickResolver_OutsideGridAlwaysAbsent(t *testing.T) {
	cfg, _, index := createTestBoard(t)
	r := NewClickResolver(cfg)

	lo := cfg.Origin().X
	hi := lo + cfg.Size()
	for _, v := range []float64{lo - 1000, lo - 0.001, hi, hi + 0.5, hi + 1000} {
		for _, w := range []float64{lo, 0, hi - 1} {
			assert.False(t, r.ResolveWorld(grid.Vec{X: v, Y: w}, index).Selected, "x=%v y=%v", v, w)
			assert.False(t, r.ResolveWorld(grid.Vec{X: w, Y: v}, index).Selected, "x=%v y=%v", w, v)
		}
	}
}

func TestClickResolver_UnindexedCellIsAbsent(t *testing.T) {
	cfg := createTestGrid(t)
	r := NewClickResolver(cfg)

	ev := r.ResolveWorld(grid.Vec{X: 0, Y: 0}, ecs.NewCellIndex())
	assert.False(t, ev.Selected)
}

func TestClickResolver_Resolve(t *testing.T) {
	cfg, _, index := createTestBoard(t)
	r := NewClickResolver(cfg)

	t.Run("no press emits nothing", func(t *testing.T) {
		_, ok := r.Resolve(PointerInput{X: 320, Y: 240, HasCursor: true}, testViewport, worldCamera(), index)
		assert.False(t, ok)
	})

	t.Run("missing cursor drops the press", func(t *testing.T) {
		_, ok := r.Resolve(PointerInput{Pressed: true, HasCursor: false}, testViewport, worldCamera(), index)
		assert.False(t, ok)
	})

	t.Run("press on a cell", func(t *testing.T) {
		// screen (176, 384) -> world (-144, -144) with the viewport centered on the origin
		in := PointerInput{Pressed: true, X: 176, Y: 384, HasCursor: true}

		ev, ok := r.Resolve(in, testViewport, worldCamera(), index)
		require.True(t, ok)
		assert.True(t, ev.Selected)
		assert.Equal(t, grid.At(1, 1), ev.Coordinates)
	})

	t.Run("top row is row 10", func(t *testing.T) {
		in := PointerInput{Pressed: true, X: 464, Y: 96, HasCursor: true}

		ev, ok := r.Resolve(in, testViewport, worldCamera(), index)
		require.True(t, ok)
		assert.Equal(t, grid.At(10, 10), ev.Coordinates)
	})

	t.Run("press outside the grid emits an absent event", func(t *testing.T) {
		in := PointerInput{Pressed: true, X: 5, Y: 5, HasCursor: true}

		ev, ok := r.Resolve(in, testViewport, worldCamera(), index)
		require.True(t, ok)
		assert.False(t, ev.Selected)
	})

	t.Run("camera pan is applied", func(t *testing.T) {
		cam := &grid.Camera{X: 144, Y: 144, Zoom: 1}
		in := PointerInput{Pressed: true, X: 320, Y: 240, HasCursor: true}

		ev, ok := r.Resolve(in, testViewport, cam.WorldTransform(), index)
		require.True(t, ok)
		assert.Equal(t, grid.At(10, 10), ev.Coordinates)
	})
}
