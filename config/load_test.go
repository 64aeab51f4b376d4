package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	Reset()
	assert.NoError(t, Current().Validate())
}

func TestLoadMergesFilesInOrder(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := writeConfig(t, `
player:
  jump_speed: 12
  spawn_position: [1, 2, 3]
blast:
  force: 500
`)
	second := writeConfig(t, `
blast:
  force: 750
`)

	settings, err := Load(first, second)
	require.NoError(t, err)

	assert.Equal(t, float32(12), Player.JumpSpeed)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, Player.SpawnPosition)
	assert.Equal(t, float32(750), Blast.Force)
	assert.Equal(t, settings, Current())

	// Untouched keys keep their defaults.
	assert.Equal(t, float32(0.25), Blast.Duration)
	assert.Equal(t, float32(12), Player.MaxHorizontalSpeed)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, float32(10), Player.JumpSpeed)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Load(writeConfig(t, "player:\n  jump_sped: 3\n"))
	assert.Error(t, err)
	assert.Equal(t, float32(10), Player.JumpSpeed)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	_, err := Load(writeConfig(t, "camera:\n  offset: 2\nphysics:\n  fixed_step: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera.offset")
	assert.Contains(t, err.Error(), "physics.fixed_step")
	assert.Equal(t, float32(0.5), Camera.Offset)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Blast.Radius = 2.5
	data, err := Current().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "radius: 2.5")

	Reset()
	_, err = Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), Blast.Radius)
}

func TestParseAction(t *testing.T) {
	id, err := ParseAction(" Rocket ")
	require.NoError(t, err)
	assert.Equal(t, ActionFireRocket, id)
	assert.Equal(t, "rocket", id.String())

	_, err = ParseAction("none")
	assert.Error(t, err)
	_, err = ParseAction("dance")
	assert.Error(t, err)
}
