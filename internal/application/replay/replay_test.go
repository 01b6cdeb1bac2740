package replay

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/nukem/internal/application/session"
	"github.com/younwookim/nukem/internal/application/system"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

func createTestSession(t *testing.T) *session.Session {
	t.Helper()
	loader := config.NewLoader("../../../cmd/game/configs")
	cfg, err := loader.LoadAll("hollywood")
	require.NoError(t, err)

	level, err := system.BuildLevel(cfg.Level, cfg.Tuning)
	require.NoError(t, err)
	return session.New(level, cfg.Tuning)
}

// createTestScript runs right, hopping and shooting on a fixed rhythm
func createTestScript(frames int) []system.InputState {
	script := make([]system.InputState, frames)
	for i := range script {
		script[i] = system.InputState{
			Right: true,
			Jump:  i%40 == 0,
			Shoot: i%25 == 0,
		}
	}
	return script
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: "2.0",
		Level:   "test",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, U: true, D: true, S: true},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Jump: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Up: true, Down: true, Shoot: true}, input)
	assert.True(t, replayer.Done())

	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(ReplayData{Frames: []FrameInput{{F: 0, R: true}, {F: 1}}})

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())
	assert.Equal(t, 2, replayer.TotalFrames())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Right)
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder("hollywood")
	rec.RecordFrame(system.InputState{Left: true})
	rec.RecordFrame(system.InputState{Shoot: true})

	assert.True(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())
	assert.Equal(t, []FrameInput{{F: 0, L: true}, {F: 1, S: true}}, rec.Data().Frames)
	assert.Equal(t, "hollywood", rec.Data().Level)

	rec.Stop()
	rec.RecordFrame(system.InputState{Right: true})
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	rec := NewRecorder("hollywood")
	for _, in := range createTestScript(30) {
		rec.RecordFrame(in)
	}

	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data(), *data)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	err := NewRecorder("hollywood").Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.True(t, errors.Is(err, ErrNoFrames))
}

func TestLoadReplay_Missing(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRun_ReproducesRecordedSession(t *testing.T) {
	live := createTestSession(t)
	rec := NewRecorder(live.Level().ID)

	var liveEvents []system.Event
	for _, in := range createTestScript(600) {
		rec.RecordFrame(in)
		liveEvents = append(liveEvents, live.Step(in)...)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))
	data, err := LoadReplay(path)
	require.NoError(t, err)

	replayed := createTestSession(t)
	events := Run(replayed, NewReplayer(*data))

	assert.Equal(t, liveEvents, events)
	assert.Equal(t, live.Player().Body, replayed.Player().Body)
	assert.Equal(t, live.Score(), replayed.Score())
	assert.Equal(t, 600, replayed.Frame())
	assert.NotEmpty(t, events, "the script shoots at least once")
}
