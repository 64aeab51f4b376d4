package systems_test

import (
	"testing"

	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlastExpiresAfterDuration(t *testing.T) {
	sb, _ := newSandbox(t)

	blast, err := factory.CreateBlast(sb.ECS(), sb.Engine(), mgl32.Vec3{10, 1, 10})
	require.NoError(t, err)
	ent := blast.Entity()

	sb.Update()
	assert.Equal(t, 1, sb.Stats().Blasts)
	assert.Greater(t, components.Blast.Get(blast).Progress, float32(0))

	step(sb, 10)
	assert.Equal(t, 1, sb.Stats().Blasts)

	frames := int(cfg.Blast.Duration/frameDt) + 3
	step(sb, frames-11)
	assert.Zero(t, sb.Stats().Blasts)
	assert.False(t, sb.World().Valid(ent))
	_, ok := sb.Engine().Position(ent)
	assert.False(t, ok)
}

func TestBlastPushesPropsOutward(t *testing.T) {
	sb, _ := newSandbox(t)
	center := mgl32.Vec3{10, 3, 10}

	_, err := factory.CreateBlast(sb.ECS(), sb.Engine(), center)
	require.NoError(t, err)
	side, err := factory.CreateProp(sb.ECS(), sb.Engine(), center.Add(mgl32.Vec3{0.8, 0, 0}), mgl32.Vec3{})
	require.NoError(t, err)
	middle, err := factory.CreateProp(sb.ECS(), sb.Engine(), mgl32.Vec3{-10, 3, -10}, mgl32.Vec3{})
	require.NoError(t, err)
	_, err = factory.CreateBlast(sb.ECS(), sb.Engine(), mgl32.Vec3{-10, 3, -10})
	require.NoError(t, err)

	sb.Update()

	v, ok := sb.Engine().Velocity(side.Entity())
	require.True(t, ok)
	assert.Greater(t, v.X(), float32(5))
	assert.InDelta(t, 0, v.Z(), 1e-4)

	// A body sitting on the centre is pushed straight up.
	v, ok = sb.Engine().Velocity(middle.Entity())
	require.True(t, ok)
	assert.Greater(t, v.Y(), float32(5))
	assert.InDelta(t, 0, v.X(), 1e-4)
}

func TestBlastPushesPropAcrossCellEdge(t *testing.T) {
	sb, _ := newSandbox(t)

	_, err := factory.CreateBlast(sb.ECS(), sb.Engine(), mgl32.Vec3{3.9, 3, 3.9})
	require.NoError(t, err)
	prop, err := factory.CreateProp(sb.ECS(), sb.Engine(), mgl32.Vec3{4.2, 3, 4.2}, mgl32.Vec3{})
	require.NoError(t, err)

	sb.Update()

	v, ok := sb.Engine().Velocity(prop.Entity())
	require.True(t, ok)
	assert.Greater(t, v.X(), float32(2))
	assert.Greater(t, v.Z(), float32(2))
}

func TestBlastIgnoresFixedBodies(t *testing.T) {
	sb, _ := newSandbox(t)
	box, err := sb.AddBox(mgl32.Vec3{10, 1, 10}, mgl32.Vec3{0.5, 0.5, 0.5})
	require.NoError(t, err)

	_, err = factory.CreateBlast(sb.ECS(), sb.Engine(), mgl32.Vec3{10, 1.5, 10})
	require.NoError(t, err)
	sb.Update()

	v, ok := sb.Engine().Velocity(box)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{}, v)
}

func TestRocketAtOwnFeetLaunchesPlayer(t *testing.T) {
	sb, in := newSandbox(t)
	unpause(sb, in)

	// Look straight down.
	in.look(0, cfg.Player.MaxPitch/cfg.Player.LookSensitivity+100)
	sb.Update()
	require.InDelta(t, -cfg.Player.MaxPitch, sb.Stats().Pitch, 1e-3)
	require.True(t, sb.Stats().Grounded)

	in.hold(cfg.ActionFireRocket)
	sb.Update()

	st := sb.Stats()
	assert.Equal(t, 1, st.Blasts)
	assert.False(t, st.Grounded)
	assert.Greater(t, st.Velocity.Y(), float32(5))

	// Holding the trigger does not fire again.
	sb.Update()
	assert.Equal(t, 1, sb.Stats().Blasts)
}
