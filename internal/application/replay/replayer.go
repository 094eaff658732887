package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/avoidtrouble/internal/application/system"
)

// Replayer plays recorded transition commands back in order
type Replayer struct {
	data ReplayData
	next int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeReplay(file)
}

// DecodeReplay reads replay data from r
func DecodeReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}

// Next returns the next recorded command and its frame. ok is false once
// every command has been returned. A command that no longer parses is
// returned as err with ok true so the caller can report it and continue.
func (r *Replayer) Next() (frame int, intent system.Intent, ok bool, err error) {
	if r.next >= len(r.data.Frames) {
		return 0, nil, false, nil
	}

	fi := r.data.Frames[r.next]
	r.next++

	intent, err = system.ParseIntent(fi.Cmd)
	return fi.F, intent, true, err
}

// Remaining returns how many commands have not been returned yet
func (r *Replayer) Remaining() int {
	return len(r.data.Frames) - r.next
}

// Initial returns the state name the recording started in
func (r *Replayer) Initial() string {
	return r.data.Initial
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.next = 0
}
