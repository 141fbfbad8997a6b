package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aw88/picross/internal/application/system"
	"github.com/aw88/picross/internal/domain/grid"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for one puzzle session. The viewport and
// camera are stored so playback resolves clicks the same way.
func NewRecorder(puzzleID string, viewport grid.Vec, camera *grid.Camera) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Puzzle:    puzzleID,
			StartTime: time.Now().Format(time.RFC3339),
			ViewportW: viewport.X,
			ViewportH: viewport.Y,
			Camera:    CameraData{X: camera.X, Y: camera.Y, Zoom: camera.Zoom},
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.PointerInput) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, frameFromInput(r.frame, input))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
