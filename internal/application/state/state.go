// Package state names the phases a picross session moves through.
package state

// Phase is the top-level screen the player is on
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePuzzle
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhasePuzzle:
		return "Puzzle"
	default:
		return "Unknown"
	}
}
