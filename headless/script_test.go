package headless

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/rocketbox/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkAndShoot = `
dt: 0.02
steps:
  - frames: 1
    press: [pause]
  - frames: 3
    hold: [forward, ball]
    mouse: [4, -2]
  - frames: 2
    press: [rocket]
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(walkAndShoot))
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	first := s.Sample()
	assert.Equal(t, float32(0.02), first.Dt)
	assert.True(t, first.Held[cfg.ActionPause])

	for i := 0; i < 3; i++ {
		sample := s.Sample()
		assert.False(t, sample.Held[cfg.ActionPause])
		assert.True(t, sample.Held[cfg.ActionMoveForward])
		assert.True(t, sample.Held[cfg.ActionFireBall])
		assert.Equal(t, float32(4), sample.MouseDX)
		assert.Equal(t, float32(-2), sample.MouseDY)
	}

	assert.True(t, s.Sample().Held[cfg.ActionFireRocket])
	assert.False(t, s.Done())
	assert.False(t, s.Sample().Held[cfg.ActionFireRocket])
	assert.True(t, s.Done())

	idle := s.Sample()
	assert.Equal(t, [cfg.ActionCount]bool{}, idle.Held)
	assert.Equal(t, float32(0.02), idle.Dt)
}

func TestParseScriptDefaultsDt(t *testing.T) {
	cfg.Reset()
	s, err := ParseScript([]byte("steps:\n  - frames: 1\n"))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/60, s.Sample().Dt, 1e-7)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no steps", "dt: 0.1\n"},
		{"zero frames", "steps:\n  - frames: 0\n"},
		{"unknown action", "steps:\n  - frames: 1\n    hold: [fly]\n"},
		{"unknown key", "steps:\n  - frames: 1\n    wait: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.data))
			assert.Error(t, err)
		})
	}

	_, err := ParseScript(nil)
	assert.ErrorIs(t, err, ErrEmptyScript)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(walkAndShoot), 0o644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
