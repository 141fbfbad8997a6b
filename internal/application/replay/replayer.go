package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aw88/picross/internal/application/board"
	"github.com/aw88/picross/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	if err := data.CameraModel().Validate(); err != nil {
		return nil, fmt.Errorf("replay %s: %w", filename, err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.PointerInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.PointerInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Puzzle returns the id of the recorded puzzle
func (r *Replayer) Puzzle() string {
	return r.data.Puzzle
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run feeds every remaining frame to the controller with the recorded viewport
// and camera, and returns the selections it produced. The controller's
// OnSelect callback is replaced for the duration of the run.
func (r *Replayer) Run(ctrl *board.Controller) []board.Selection {
	viewport := r.data.Viewport()
	camera := r.data.CameraModel().WorldTransform()

	var selections []board.Selection
	prev := ctrl.OnSelect
	ctrl.OnSelect = func(s board.Selection) {
		selections = append(selections, s)
		if prev != nil {
			prev(s)
		}
	}
	defer func() { ctrl.OnSelect = prev }()

	ctrl.Start()
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		ctrl.HandlePointer(in, viewport, camera)
	}
	return selections
}

// CreateTestReplayData creates replay data for testing (cursor resting at one
// spot, never pressed)
func CreateTestReplayData(frames int, mouseX, mouseY float64) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Puzzle:    "test",
		StartTime: time.Now().Format(time.RFC3339),
		ViewportW: 640,
		ViewportH: 480,
		Camera:    CameraData{Zoom: 1},
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			C:  true,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
