package grid

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := NewConfig(32, 10, Vec{})
	require.NoError(t, err)
	return cfg
}

func TestNewConfig(t *testing.T) {
	cfg := createTestConfig(t)

	assert.Equal(t, Vec{X: -160, Y: -160}, cfg.Origin())
	assert.Equal(t, 320.0, cfg.Size())
	assert.Equal(t, 10, cfg.CellCount())
	assert.Equal(t, DefaultMinorLineThickness, cfg.MinorLineThickness())
	assert.Equal(t, 2*DefaultMinorLineThickness, cfg.MajorLineThickness())
}

func TestNewConfig_OffCenter(t *testing.T) {
	cfg, err := NewConfig(16, 4, Vec{X: 100, Y: -20})
	require.NoError(t, err)

	assert.Equal(t, Vec{X: 68, Y: -52}, cfg.Origin())
	assert.Equal(t, Vec{X: 100, Y: -20}, cfg.Center())
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		cellSize float64
		count    int
	}{
		{"zero cell size", 0, 10},
		{"negative cell size", -1, 10},
		{"zero count", 32, 0},
		{"negative count", 32, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.cellSize, tt.count, Vec{})
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_CellToWorld(t *testing.T) {
	cfg := createTestConfig(t)

	assert.Equal(t, Vec{X: -144, Y: -144}, cfg.CellToWorld(At(1, 1)))
	assert.Equal(t, Vec{X: 144, Y: 144}, cfg.CellToWorld(At(10, 10)))
	assert.Equal(t, Vec{X: -144, Y: 144}, cfg.CellToWorld(At(1, 10)))
}

func TestConfig_WorldToCell(t *testing.T) {
	cfg := createTestConfig(t)

	tests := []struct {
		name string
		pos  Vec
		want Coordinates
	}{
		{"first cell center", Vec{X: -144, Y: -144}, At(1, 1)},
		{"lower-left corner", Vec{X: -160, Y: -160}, At(1, 1)},
		{"last cell center", Vec{X: 144, Y: 144}, At(10, 10)},
		{"just inside far edge", Vec{X: 159.9, Y: 159.9}, At(10, 10)},
		{"far edge is outside", Vec{X: 160, Y: 0}, At(11, 6)},
		{"just left of grid", Vec{X: -161, Y: 0}, At(0, 6)},
		{"far below grid", Vec{X: 0, Y: -10000}, At(6, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.WorldToCell(tt.pos))
		})
	}
}

func TestConfig_RoundTrip(t *testing.T) {
	for _, count := range []int{1, 4, 10, 15, 25} {
		cfg, err := NewConfig(32, count, Vec{X: 7, Y: -3})
		require.NoError(t, err)

		for x := 1; x <= count; x++ {
			for y := 1; y <= count; y++ {
				c := At(uint32(x), uint32(y))
				assert.Equal(t, c, cfg.WorldToCell(cfg.CellToWorld(c)), "count %d cell %v", count, c)
			}
		}
	}
}

func TestConfig_OutsideNeverInside(t *testing.T) {
	cfg := createTestConfig(t)
	origin := cfg.Origin()
	far := origin.X + cfg.Size()

	outside := []Vec{
		{X: origin.X - 0.01, Y: 0},
		{X: far, Y: 0},
		{X: far + 500, Y: 0},
		{X: 0, Y: origin.Y - 1},
		{X: 0, Y: far + 0.5},
	}
	for _, p := range outside {
		assert.False(t, cfg.Contains(cfg.WorldToCell(p)), "point %v", p)
	}
}

func TestConfig_Contains(t *testing.T) {
	cfg := createTestConfig(t)

	assert.True(t, cfg.Contains(At(1, 1)))
	assert.True(t, cfg.Contains(At(10, 10)))
	assert.False(t, cfg.Contains(At(0, 1)))
	assert.False(t, cfg.Contains(At(1, 0)))
	assert.False(t, cfg.Contains(At(11, 5)))
	assert.False(t, cfg.Contains(At(5, 11)))
}

func TestScreenToWorld(t *testing.T) {
	viewport := Vec{X: 640, Y: 480}

	t.Run("identity camera recenters", func(t *testing.T) {
		var m ebiten.GeoM
		p := ScreenToWorld(Vec{X: 320, Y: 240}, viewport, m)
		assert.Equal(t, Vec{}, p)

		p = ScreenToWorld(Vec{X: 0, Y: 0}, viewport, m)
		assert.Equal(t, Vec{X: -320, Y: -240}, p)
	})

	t.Run("default camera flips y", func(t *testing.T) {
		cam := NewCamera()
		p := ScreenToWorld(Vec{X: 330, Y: 230}, viewport, cam.WorldTransform())
		assert.InDelta(t, 10, p.X, 1e-9)
		assert.InDelta(t, 10, p.Y, 1e-9)
	})

	t.Run("panned and zoomed camera", func(t *testing.T) {
		cam := &Camera{X: 100, Y: 50, Zoom: 2}
		p := ScreenToWorld(Vec{X: 340, Y: 260}, viewport, cam.WorldTransform())
		assert.InDelta(t, 110, p.X, 1e-9)
		assert.InDelta(t, 40, p.Y, 1e-9)
	})
}

func TestCamera_WorldToScreenInverse(t *testing.T) {
	viewport := Vec{X: 640, Y: 480}
	cam := &Camera{X: -30, Y: 12, Zoom: 1.5}

	for _, p := range []Vec{{}, {X: -144, Y: -144}, {X: 144, Y: 80}} {
		s := cam.WorldToScreen(p, viewport)
		back := ScreenToWorld(s, viewport, cam.WorldTransform())
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestCamera_Validate(t *testing.T) {
	var nilCam *Camera
	assert.ErrorIs(t, nilCam.Validate(), ErrInvalidCamera)
	assert.ErrorIs(t, (&Camera{}).Validate(), ErrInvalidCamera)
	assert.ErrorIs(t, (&Camera{Zoom: -1}).Validate(), ErrInvalidCamera)
	assert.NoError(t, NewCamera().Validate())
}
