package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/aw88/picross/internal/application/game"
	"github.com/aw88/picross/internal/application/scene"
	"github.com/aw88/picross/internal/application/scene/menu"
	"github.com/aw88/picross/internal/application/scene/playing"
	"github.com/aw88/picross/internal/infrastructure/config"
	"github.com/aw88/picross/internal/storage"
)

const defaultPuzzle = "checker"

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play a puzzle",
	Long: `Open the main menu and start the given puzzle when Play is clicked.

Controls:
  Left click  - Mark or unmark a cell
  F5          - Save the recording (with --record)

Marks are saved to the progress database and restored next time.

Examples:
  picross play
  picross play heart
  picross play smile --record smile.json
  picross play heart --db ./progress.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	puzzleID := defaultPuzzle
	if len(args) > 0 {
		puzzleID = args[0]
	}

	loader, err := newLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return err
	}
	pc, err := loader.LoadPuzzle(puzzleID)
	if err != nil {
		return fmt.Errorf("unknown puzzle %q (run 'picross list'): %w", puzzleID, err)
	}

	opts := playing.Options{RecordPath: flagRecord, Logger: logger}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("progress will not be saved", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	// Build the puzzle scene up front so bad settings fail before the window opens.
	puzzleScene, err := playing.New(cfg, pc, opts)
	if err != nil {
		return err
	}

	start, err := menu.New(cfg, func() (scene.Scene, error) { return puzzleScene, nil }, logger)
	if err != nil {
		return err
	}

	return run(cfg, start, logger)
}

func run(cfg *config.GameConfig, start scene.Scene, logger *log.Logger) error {
	d := cfg.Display
	g := game.New(start, d.ScreenWidth, d.ScreenHeight, logger)
	if d.Framerate > 0 {
		g.SetDT(1.0 / float64(d.Framerate))
		ebiten.SetTPS(d.Framerate)
	}

	scale := max(d.Scale, 1)
	ebiten.SetWindowSize(d.ScreenWidth*scale, d.ScreenHeight*scale)
	ebiten.SetWindowTitle(d.Title)

	logger.Info("starting", "size", fmt.Sprintf("%dx%d", d.ScreenWidth, d.ScreenHeight))
	return ebiten.RunGame(g)
}
