// Package menu provides the main menu scene with a single play button.
package menu

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aw88/picross/internal/application/scene"
	"github.com/aw88/picross/internal/application/state"
	"github.com/aw88/picross/internal/application/system"
	"github.com/aw88/picross/internal/domain/grid"
	"github.com/aw88/picross/internal/infrastructure/config"
)

// debug font cell size used to center the label
const (
	glyphW = 6
	glyphH = 16
)

// Button is an axis-aligned screen rectangle
type Button struct {
	X, Y, W, H float64
}

// Contains reports whether the screen point lies inside the button.
func (b Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Menu is the main menu scene
type Menu struct {
	button     Button
	label      string
	palette    config.MenuPalette
	background color.RGBA
	viewport   grid.Vec
	input      *system.InputSystem
	logger     *log.Logger

	hovered  bool
	clicked  bool
	labelImg *ebiten.Image

	// OnPlay builds the puzzle scene when the button is clicked
	OnPlay func() (scene.Scene, error)
}

// New creates the menu with the button centered in the viewport.
func New(cfg *config.GameConfig, onPlay func() (scene.Scene, error), logger *log.Logger) (*Menu, error) {
	palette, err := cfg.Menu.Palette()
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	colors, err := cfg.Colors.Palette()
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight)
	bw, bh := cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight

	return &Menu{
		button:     Button{X: 0.5 * (w - bw), Y: 0.5 * (h - bh), W: bw, H: bh},
		label:      cfg.Menu.Label,
		palette:    palette,
		background: colors.Background,
		viewport:   grid.Vec{X: w, Y: h},
		input:      system.NewInputSystem(),
		logger:     logger,
		OnPlay:     onPlay,
	}, nil
}

// Update handles hover and click (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	return m.handle(m.input.GetInput(m.viewport))
}

func (m *Menu) handle(in system.PointerInput) (scene.Scene, error) {
	m.hovered = in.HasCursor && m.button.Contains(in.X, in.Y)
	if !in.Pressed || !m.hovered {
		return nil, nil
	}

	m.clicked = true
	m.logger.Info("play clicked")
	if m.OnPlay == nil {
		return nil, nil
	}
	next, err := m.OnPlay()
	if err != nil {
		return nil, fmt.Errorf("failed to start puzzle: %w", err)
	}
	return next, nil
}

// Draw renders the menu
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(m.background)

	b := m.button
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), m.buttonColor(), false)

	if m.label == "" {
		return
	}
	if m.labelImg == nil {
		m.labelImg = ebiten.NewImage(len(m.label)*glyphW, glyphH)
		ebitenutil.DebugPrint(m.labelImg, m.label)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.X+0.5*b.W-float64(len(m.label)*glyphW)/2, b.Y+0.5*b.H-glyphH/2)
	op.ColorScale.ScaleWithColor(m.palette.Text)
	screen.DrawImage(m.labelImg, op)
}

func (m *Menu) buttonColor() color.RGBA {
	switch {
	case m.clicked:
		return m.palette.Clicked
	case m.hovered:
		return m.palette.Hovered
	default:
		return m.palette.Button
	}
}

// Button returns the play button rectangle
func (m *Menu) Button() Button {
	return m.button
}

// OnEnter is called when entering this scene
func (m *Menu) OnEnter() {
	m.hovered = false
	m.clicked = false
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}

// Phase implements scene.Scene
func (m *Menu) Phase() state.Phase {
	return state.PhaseMainMenu
}
