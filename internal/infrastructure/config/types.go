package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/aw88/picross/internal/domain/grid"
)

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	Grid    GridConfig    `json:"grid"`
	Camera  CameraConfig  `json:"camera"`
	Colors  ColorConfig   `json:"colors"`
	Menu    MenuConfig    `json:"menu"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// GridConfig holds the grid settings shared by every puzzle. The cell count
// comes from the puzzle itself.
type GridConfig struct {
	CellSize           float64 `json:"cellSize"`
	CenterX            float64 `json:"centerX"`
	CenterY            float64 `json:"centerY"`
	MinorLineThickness float64 `json:"minorLineThickness"`
}

type CameraConfig struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// ColorConfig holds hex colors ("#rrggbb")
type ColorConfig struct {
	Background    string `json:"background"`
	GridLine      string `json:"gridLine"`
	CellBase      string `json:"cellBase"`
	CellAlternate string `json:"cellAlternate"`
	CellMarked    string `json:"cellMarked"`
	Clue          string `json:"clue"`
}

type MenuConfig struct {
	ButtonWidth  float64 `json:"buttonWidth"`
	ButtonHeight float64 `json:"buttonHeight"`
	ButtonColor  string  `json:"buttonColor"`
	HoveredColor string  `json:"hoveredColor"`
	ClickedColor string  `json:"clickedColor"`
	TextColor    string  `json:"textColor"`
	Label        string  `json:"label"`
}

// Build creates the grid coordinate model for a puzzle of cellCount cells per side.
func (g GridConfig) Build(cellCount int) (grid.Config, error) {
	cfg, err := grid.NewConfig(g.CellSize, cellCount, grid.Vec{X: g.CenterX, Y: g.CenterY})
	if err != nil {
		return grid.Config{}, err
	}
	return cfg.WithLineThickness(g.MinorLineThickness), nil
}

// Camera returns the configured camera. A zero zoom defaults to 1.
func (c CameraConfig) Camera() *grid.Camera {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return &grid.Camera{X: c.X, Y: c.Y, Zoom: zoom}
}

// Palette is ColorConfig resolved to drawable colors
type Palette struct {
	Background    color.RGBA
	GridLine      color.RGBA
	CellBase      color.RGBA
	CellAlternate color.RGBA
	CellMarked    color.RGBA
	Clue          color.RGBA
}

// Palette parses all colors
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Background, &p.Background},
		{"gridLine", c.GridLine, &p.GridLine},
		{"cellBase", c.CellBase, &p.CellBase},
		{"cellAlternate", c.CellAlternate, &p.CellAlternate},
		{"cellMarked", c.CellMarked, &p.CellMarked},
		{"clue", c.Clue, &p.Clue},
	}
	for _, f := range fields {
		rgba, err := ParseColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("failed to parse color %s: %w", f.name, err)
		}
		*f.dst = rgba
	}
	return p, nil
}

// ParseColor converts "#rrggbb" to an opaque color
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MenuPalette is the menu button colors resolved to drawable colors
type MenuPalette struct {
	Button  color.RGBA
	Hovered color.RGBA
	Clicked color.RGBA
	Text    color.RGBA
}

// Palette parses the menu button colors
func (m MenuConfig) Palette() (MenuPalette, error) {
	var p MenuPalette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"buttonColor", m.ButtonColor, &p.Button},
		{"hoveredColor", m.HoveredColor, &p.Hovered},
		{"clickedColor", m.ClickedColor, &p.Clicked},
		{"textColor", m.TextColor, &p.Text},
	}
	for _, f := range fields {
		rgba, err := ParseColor(f.hex)
		if err != nil {
			return MenuPalette{}, fmt.Errorf("failed to parse color %s: %w", f.name, err)
		}
		*f.dst = rgba
	}
	return p, nil
}
