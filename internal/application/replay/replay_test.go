package replay

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/avoidtrouble/internal/application/state"
	"github.com/younwookim/avoidtrouble/internal/application/system"
)

func TestRecorder_Record(t *testing.T) {
	r := NewRecorder("MainMenu")
	require.True(t, r.IsRecording())

	r.Record(10, system.RequestIntent{Target: state.StateInGame})
	r.Record(42, system.PushIntent{Target: state.StatePaused})
	r.Stop()
	r.Record(50, system.PopIntent{})

	assert.False(t, r.IsRecording())
	assert.Equal(t, 2, r.FrameCount())

	data := r.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, "MainMenu", data.Initial)
	assert.Equal(t, []FrameIntent{
		{F: 10, Cmd: "request InGame"},
		{F: 42, Cmd: "push Paused"},
	}, data.Frames)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder("InGame")
	r.Record(1, system.PushIntent{Target: state.StatePaused})
	r.Record(2, system.PopIntent{})

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "InGame", data.Initial)
	assert.Len(t, data.Frames, 2)
}

// failingFile accepts writes and fails on Close, like a lost flush
type failingFile struct {
	bytes.Buffer
}

func (f *failingFile) Close() error {
	return assert.AnError
}

func TestRecorder_SaveReportsCloseError(t *testing.T) {
	orig := createFile
	t.Cleanup(func() { createFile = orig })
	file := &failingFile{}
	createFile = func(string) (io.WriteCloser, error) { return file, nil }

	r := NewRecorder("MainMenu")
	r.Record(1, system.RequestIntent{Target: state.StateInGame})

	err := r.Save("session.json")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, file.String(), `"request InGame"`, "data was written before close")
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("MainMenu")
	path := filepath.Join(t.TempDir(), "empty.json")

	assert.Error(t, r.Save(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Initial: "MainMenu",
		Frames: []FrameIntent{
			{F: 3, Cmd: "request InGame"},
			{F: 9, Cmd: "warp Somewhere"},
			{F: 12, Cmd: "pop"},
		},
	}
	replayer := NewReplayer(data)
	assert.Equal(t, "MainMenu", replayer.Initial())
	assert.Equal(t, 3, replayer.Remaining())

	frame, intent, ok, err := replayer.Next()
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, 3, frame)
	assert.Equal(t, system.RequestIntent{Target: state.StateInGame}, intent)

	frame, _, ok, err = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, 9, frame)
	assert.ErrorIs(t, err, system.ErrUnknownCommand)

	_, intent, ok, err = replayer.Next()
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, system.PopIntent{}, intent)

	_, _, ok, _ = replayer.Next()
	assert.False(t, ok)
	assert.Zero(t, replayer.Remaining())

	replayer.Reset()
	assert.Equal(t, 3, replayer.Remaining())
}

func TestDecodeReplay(t *testing.T) {
	r := NewRecorder("MainMenu")
	r.Record(0, system.RequestIntent{Target: state.StateInGame})

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))

	data, err := DecodeReplay(&buf)
	require.NoError(t, err)
	assert.Equal(t, []FrameIntent{{F: 0, Cmd: "request InGame"}}, data.Frames)

	_, err = DecodeReplay(strings.NewReader(`{"version":"0.1","frames":[]}`))
	assert.Error(t, err)

	_, err = DecodeReplay(strings.NewReader(`{`))
	assert.Error(t, err)
}
