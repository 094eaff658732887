package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/avoidtrouble/internal/application/system"
)

// Recorder handles transition recording
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder for a session starting in initial
func NewRecorder(initial string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Initial:   initial,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameIntent, 0, 64),
		},
		recording: true,
	}
}

// Record appends intent issued on frame
func (r *Recorder) Record(frame int, intent system.Intent) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameIntent{F: frame, Cmd: intent.String()})
}

// Encode writes the recording as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := createFile(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := r.Encode(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded commands
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns a copy of the recorded data
func (r *Recorder) Data() ReplayData {
	d := r.data
	d.Frames = append([]FrameIntent(nil), r.data.Frames...)
	return d
}
