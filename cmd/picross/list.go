package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aw88/picross/internal/infrastructure/config"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bundled puzzles",
	Long:  `Shows every puzzle embedded in the binary with its size and filled cell count.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}
	puzzles, err := loader.ListPuzzles()
	if err != nil {
		return err
	}
	return renderList(cmd.OutOrStdout(), puzzles)
}

func renderList(w io.Writer, puzzles []*config.PuzzleConfig) error {
	if len(puzzles) == 0 {
		_, err := fmt.Fprintln(w, "No puzzles available.")
		return err
	}

	// Calculate column widths
	idW, nameW := len("ID"), len("Name")
	for _, p := range puzzles {
		idW = max(idW, len(p.ID))
		nameW = max(nameW, len(p.Name))
	}

	row := func(id, name, size, filled string, first, style lipgloss.Style) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			first.Width(idW+2).Render(id),
			style.Width(nameW+2).Render(name),
			style.Width(7).Render(size),
			style.Render(filled),
		)
	}

	fmt.Fprintln(w, row("ID", "Name", "Size", "Filled", headerStyle, headerStyle))
	for _, p := range puzzles {
		filled := "?"
		if sol, err := p.Solution(); err == nil {
			filled = strconv.Itoa(sol.FilledCount())
		}
		size := fmt.Sprintf("%dx%d", p.Size(), p.Size())
		fmt.Fprintln(w, row(p.ID, p.Name, size, filled, idStyle, lipgloss.NewStyle()))
	}

	_, err := fmt.Fprintln(w, dimStyle.Render("\nRun 'picross play <id>' to play a puzzle."))
	return err
}
