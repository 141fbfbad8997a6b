// Package playing provides the puzzle board scene.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aw88/picross/internal/application/board"
	"github.com/aw88/picross/internal/application/replay"
	"github.com/aw88/picross/internal/application/scene"
	"github.com/aw88/picross/internal/application/state"
	"github.com/aw88/picross/internal/application/system"
	"github.com/aw88/picross/internal/domain/grid"
	"github.com/aw88/picross/internal/infrastructure/config"
)

// debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

// MarkStore persists marked cells between sessions
type MarkStore interface {
	SaveMark(puzzleID string, c grid.Coordinates, marked bool) error
	Marks(puzzleID string) ([]grid.Coordinates, error)
}

// Options holds the optional collaborators of a Playing scene
type Options struct {
	// Store persists marks; nil plays without persistence
	Store MarkStore
	// RecordPath enables input recording when not empty
	RecordPath string
	Logger     *log.Logger
}

// Playing is the puzzle board scene
type Playing struct {
	puzzle   *config.PuzzleConfig
	board    *board.Controller
	camera   *grid.Camera
	palette  config.Palette
	input    *system.InputSystem
	viewport grid.Vec
	store    MarkStore
	logger   *log.Logger

	rowClues [][]int
	colClues [][]int
	labels   map[string]*ebiten.Image

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a Playing scene for one puzzle. Invalid grid, camera, color or
// puzzle settings fail here, before the scene is entered.
func New(cfg *config.GameConfig, pc *config.PuzzleConfig, opts Options) (*Playing, error) {
	solution, err := pc.Solution()
	if err != nil {
		return nil, err
	}
	gridCfg, err := cfg.Grid.Build(pc.Size())
	if err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", pc.ID, err)
	}
	camera := cfg.Camera.Camera()
	if err := camera.Validate(); err != nil {
		return nil, fmt.Errorf("puzzle %s: %w", pc.ID, err)
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("puzzle", pc.ID)

	ctrl, err := board.New(gridCfg, solution, logger)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		puzzle:         pc,
		board:          ctrl,
		camera:         camera,
		palette:        palette,
		input:          system.NewInputSystem(),
		viewport:       grid.Vec{X: float64(cfg.Display.ScreenWidth), Y: float64(cfg.Display.ScreenHeight)},
		store:          opts.Store,
		logger:         logger,
		rowClues:       solution.RowClues(),
		colClues:       solution.ColumnClues(),
		labels:         make(map[string]*ebiten.Image),
		recordFilename: opts.RecordPath,
	}
	ctrl.OnSelect = p.onSelect

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(pc.ID, p.viewport, camera)
		logger.Info("recording enabled", "path", opts.RecordPath)
	}

	return p, nil
}

// Update proceeds the board by one frame (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	in := p.input.GetInput(p.viewport)
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.handle(in)

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handle(in system.PointerInput) {
	p.board.HandlePointer(in, p.viewport, p.camera.WorldTransform())
}

func (p *Playing) onSelect(sel board.Selection) {
	marked, ok := p.board.ToggleMark(sel.Coordinates)
	if !ok {
		return
	}
	p.logger.Info("cell selected", "coords", sel.Coordinates, "expected", sel.Expected, "marked", marked)

	if p.store != nil {
		if err := p.store.SaveMark(p.puzzle.ID, sel.Coordinates, marked); err != nil {
			p.logger.Warn("failed to save mark", "coords", sel.Coordinates, "err", err)
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Warn("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// Draw renders the board
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.palette.Background)

	m := p.camera.ScreenTransform(p.viewport)
	p.drawCells(screen, m)
	p.drawLines(screen, m)
	p.drawClues(screen, m)
	p.drawUI(screen)
}

func (p *Playing) drawCells(screen *ebiten.Image, m ebiten.GeoM) {
	for _, pl := range p.board.Placements() {
		c := p.palette.CellBase
		switch {
		case pl.Marked:
			c = p.palette.CellMarked
		case pl.Style == grid.StyleAlternate:
			c = p.palette.CellAlternate
		}
		half := grid.Vec{X: 0.5 * pl.Size, Y: 0.5 * pl.Size}
		fillWorldRect(screen, m, pl.Center.Sub(half), pl.Center.Add(half), c)
	}
}

func (p *Playing) drawLines(screen *ebiten.Image, m ebiten.GeoM) {
	for _, l := range p.board.Lines() {
		half := l.Size.Scale(0.5)
		fillWorldRect(screen, m, l.Center.Sub(half), l.Center.Add(half), p.palette.GridLine)
	}
}

// label is a line of text placed at a screen position
type label struct {
	Text string
	X, Y float64
}

// clueLabels places row clues left of the grid and column clues above it.
func (p *Playing) clueLabels(m ebiten.GeoM) []label {
	g := p.board.Grid()
	n := g.CellCount()
	margin := g.MajorLineThickness() + 4

	var out []label
	for i, clue := range p.rowClues {
		// solution row i is grid row n-i
		left := g.CellToWorld(grid.At(1, uint32(n-i)))
		x, y := m.Apply(left.X-0.5*g.CellSize(), left.Y)
		text := formatClue(clue)
		out = append(out, label{Text: text, X: x - margin - float64(len(text)*glyphW), Y: y - glyphH/2})
	}

	for i, clue := range p.colClues {
		top := g.CellToWorld(grid.At(uint32(i+1), uint32(n)))
		x, y := m.Apply(top.X, top.Y+0.5*g.CellSize())
		if len(clue) == 0 {
			clue = []int{0}
		}
		for j, v := range clue {
			text := strconv.Itoa(v)
			row := len(clue) - j
			out = append(out, label{Text: text, X: x - float64(len(text)*glyphW)/2, Y: y - margin - float64(row*glyphH)})
		}
	}
	return out
}

func (p *Playing) drawClues(screen *ebiten.Image, m ebiten.GeoM) {
	for _, l := range p.clueLabels(m) {
		p.drawLabel(screen, l)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := fmt.Sprintf("%s  %dx%d  marked %d", p.puzzle.Name, p.puzzle.Size(), p.puzzle.Size(),
		len(p.board.MarkedCoordinates()))
	p.drawLabel(screen, label{Text: status, X: 10, Y: p.viewport.Y - glyphH - 10})

	if p.recorder != nil && p.recorder.IsRecording() {
		p.drawLabel(screen, label{Text: "REC (F5 to save)", X: 10, Y: 10})
	}
}

// drawLabel draws debug-font text tinted with the clue color. Rendered text
// is cached per string.
func (p *Playing) drawLabel(screen *ebiten.Image, l label) {
	if l.Text == "" {
		return
	}
	img, ok := p.labels[l.Text]
	if !ok {
		img = ebiten.NewImage(len(l.Text)*glyphW, glyphH)
		ebitenutil.DebugPrint(img, l.Text)
		p.labels[l.Text] = img
	}
	screen.DrawImage(img, p.labelOptions(l))
}

func (p *Playing) labelOptions(l label) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(p.palette.Clue)
	return op
}

// fillWorldRect fills the screen rectangle spanned by two world corners.
func fillWorldRect(screen *ebiten.Image, m ebiten.GeoM, lo, hi grid.Vec, c color.Color) {
	x0, y0 := m.Apply(lo.X, lo.Y)
	x1, y1 := m.Apply(hi.X, hi.Y)
	x, y := math.Min(x0, x1), math.Min(y0, y1)
	w, h := math.Abs(x1-x0), math.Abs(y1-y0)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// formatClue renders a row clue; an empty row reads "0".
func formatClue(clue []int) string {
	if len(clue) == 0 {
		return "0"
	}
	parts := make([]string, len(clue))
	for i, v := range clue {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Board returns the board controller (for tests and tooling)
func (p *Playing) Board() *board.Controller {
	return p.board
}

// OnEnter spawns the board and restores saved marks
func (p *Playing) OnEnter() {
	p.board.Start()

	if p.store == nil {
		return
	}
	marks, err := p.store.Marks(p.puzzle.ID)
	if err != nil {
		p.logger.Warn("failed to load marks", "err", err)
		return
	}
	restored := p.board.RestoreMarks(marks)
	p.logger.Info("restored marks", "count", restored)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Phase implements scene.Scene
func (p *Playing) Phase() state.Phase {
	return state.PhasePuzzle
}
