package replay

import (
	"github.com/aw88/picross/internal/application/system"
	"github.com/aw88/picross/internal/domain/grid"
)

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records pointer state for a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	P  bool    `json:"p,omitempty"` // Pressed this frame
	C  bool    `json:"c,omitempty"` // Cursor inside the viewport
	MX float64 `json:"mx"`          // MouseX
	MY float64 `json:"my"`          // MouseY
}

// CameraData is the camera a session was recorded with
type CameraData struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// ReplayData contains all data needed to replay a puzzle session
type ReplayData struct {
	Version   string       `json:"version"`
	Puzzle    string       `json:"puzzle"`
	StartTime string       `json:"startTime"`
	ViewportW float64      `json:"viewportW"`
	ViewportH float64      `json:"viewportH"`
	Camera    CameraData   `json:"camera"`
	Frames    []FrameInput `json:"frames"`
}

// Viewport returns the recorded logical screen size.
func (d ReplayData) Viewport() grid.Vec {
	return grid.Vec{X: d.ViewportW, Y: d.ViewportH}
}

// CameraModel rebuilds the recorded camera.
func (d ReplayData) CameraModel() *grid.Camera {
	return &grid.Camera{X: d.Camera.X, Y: d.Camera.Y, Zoom: d.Camera.Zoom}
}

func frameFromInput(frame int, in system.PointerInput) FrameInput {
	return FrameInput{F: frame, P: in.Pressed, C: in.HasCursor, MX: in.X, MY: in.Y}
}

func (f FrameInput) input() system.PointerInput {
	return system.PointerInput{Pressed: f.P, X: f.MX, Y: f.MY, HasCursor: f.C}
}
