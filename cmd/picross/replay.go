package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aw88/picross/internal/application/board"
	"github.com/aw88/picross/internal/application/replay"
	"github.com/aw88/picross/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session",
	Long: `Feeds a recording made with 'picross play --record' through the board
without opening a window, and prints every cell selection it produces.

Examples:
  picross replay smile.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	loader, err := newLoader()
	if err != nil {
		return err
	}
	return replaySession(loader, data, cmd.OutOrStdout(), newLogger())
}

// replaySession runs a recording against the puzzle it was made on and
// writes one line per selection.
func replaySession(loader *config.Loader, data *replay.ReplayData, w io.Writer, logger *log.Logger) error {
	cfg, err := loader.LoadGame()
	if err != nil {
		return err
	}
	pc, err := loader.LoadPuzzle(data.Puzzle)
	if err != nil {
		return err
	}
	solution, err := pc.Solution()
	if err != nil {
		return err
	}
	gridCfg, err := cfg.Grid.Build(pc.Size())
	if err != nil {
		return err
	}
	ctrl, err := board.New(gridCfg, solution, logger)
	if err != nil {
		return err
	}

	ctrl.OnSelect = func(sel board.Selection) {
		ctrl.ToggleMark(sel.Coordinates)
	}

	r := replay.NewReplayer(*data)
	selections := r.Run(ctrl)

	for _, sel := range selections {
		verdict := "empty"
		if sel.Expected {
			verdict = "filled"
		}
		fmt.Fprintf(w, "%s %s\n", sel.Coordinates, verdict)
	}

	_, err = fmt.Fprintf(w, "%d frames, %d selections, %d marked\n",
		r.TotalFrames(), len(selections), len(ctrl.MarkedCoordinates()))
	return err
}
