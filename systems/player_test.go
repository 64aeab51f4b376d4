package systems_test

import (
	"testing"

	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/physics"
	"github.com/automoto/rocketbox/systems"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"pgregory.net/rapid"
)

func TestPauseTogglesOnPressEdge(t *testing.T) {
	sb, in := newSandbox(t)
	cursor := func() *components.CursorData {
		return systems.GetOrCreateCursor(sb.ECS())
	}

	sb.Update()
	before := sb.Stats()
	assert.True(t, before.Paused)
	assert.False(t, cursor().Captured)
	assert.True(t, cursor().Visible)

	in.hold(cfg.ActionPause)
	sb.Update()
	assert.False(t, sb.Stats().Paused)
	assert.True(t, cursor().Captured)
	assert.False(t, cursor().Visible)

	// Holding the key does not toggle again.
	step(sb, 5)
	assert.False(t, sb.Stats().Paused)

	in.releaseAll()
	sb.Update()
	assert.False(t, sb.Stats().Paused)

	in.hold(cfg.ActionPause)
	sb.Update()
	after := sb.Stats()
	assert.True(t, after.Paused)
	assert.False(t, cursor().Captured)
	assert.InDelta(t, before.Yaw, after.Yaw, 1e-5)
	assert.InDelta(t, before.Pitch, after.Pitch, 1e-5)
}

func TestSingletonsAreCreatedOnce(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	first := systems.GetOrCreateCursor(e)
	assert.True(t, first.Visible)
	assert.False(t, first.Captured)
	first.Captured = true
	assert.True(t, systems.GetOrCreateCursor(e).Captured)
	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(components.Cursor)).Count(e.World))

	systems.UpdateInput(&fakeInput{})(e)
	systems.UpdateInput(&fakeInput{})(e)
	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(components.Input)).Count(e.World))
}

func TestPausedPlayerIgnoresLookAndMovement(t *testing.T) {
	sb, in := newSandbox(t)

	in.look(200, 200)
	in.hold(cfg.ActionMoveForward, cfg.ActionFireBall)
	step(sb, 10)

	st := sb.Stats()
	assert.InDelta(t, -90, st.Yaw, 1e-4)
	assert.Zero(t, st.Pitch)
	assert.InDelta(t, 0, st.Position.X(), 1e-3)
	assert.Zero(t, st.LiveProps)
}

func TestLookTurnsYawAndPitch(t *testing.T) {
	sb, in := newSandbox(t)
	unpause(sb, in)

	in.look(100, -100)
	sb.Update()

	st := sb.Stats()
	assert.InDelta(t, -95, st.Yaw, 1e-3)
	assert.InDelta(t, 5, st.Pitch, 1e-3)

	camera := components.Camera.Get(sb.World().Entry(sb.Camera()))
	forward := camera.Forward()
	assert.InDelta(t, 1, forward.Len(), 1e-5)
	assert.Greater(t, forward.Y(), float32(0))
}

func TestPitchStaysClamped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sb, in := newSandbox(t)
		unpause(sb, in)

		moves := rapid.SliceOfN(rapid.Float32Range(-5000, 5000), 1, 20).Draw(t, "dy")
		for _, dy := range moves {
			in.look(0, dy)
			sb.Update()

			pitch := sb.Stats().Pitch
			if pitch > cfg.Player.MaxPitch+1e-3 || pitch < -cfg.Player.MaxPitch-1e-3 {
				t.Fatalf("pitch %v escaped the clamp", pitch)
			}
		}
	})
}

func TestMovementBasisInitialYawFacesPositiveX(t *testing.T) {
	forward, right := systems.MovementBasis(mgl32.DegToRad(-90))
	assert.InDelta(t, 1, forward.X(), 1e-6)
	assert.InDelta(t, 0, forward.Z(), 1e-6)
	assert.InDelta(t, 0, right.X(), 1e-6)
	assert.InDelta(t, 1, right.Z(), 1e-6)
}

func TestMovementIntentIsUnitOrZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var input components.InputData
		input.Current[cfg.ActionMoveForward] = rapid.Bool().Draw(t, "forward")
		input.Current[cfg.ActionMoveBack] = rapid.Bool().Draw(t, "back")
		input.Current[cfg.ActionMoveLeft] = rapid.Bool().Draw(t, "left")
		input.Current[cfg.ActionMoveRight] = rapid.Bool().Draw(t, "right")
		yaw := rapid.Float32Range(-10, 10).Draw(t, "yaw")

		intent := systems.MovementIntent(&input, yaw)
		if intent.Y() != 0 {
			t.Fatalf("intent %v leaves the horizontal plane", intent)
		}

		cancelsZ := input.Current[cfg.ActionMoveForward] == input.Current[cfg.ActionMoveBack]
		cancelsX := input.Current[cfg.ActionMoveLeft] == input.Current[cfg.ActionMoveRight]
		if cancelsZ && cancelsX {
			if intent != (mgl32.Vec3{}) {
				t.Fatalf("opposing keys left intent %v", intent)
			}
			return
		}
		if l := intent.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("intent %v has length %v", intent, l)
		}
	})
}

func TestPlayerWalksForward(t *testing.T) {
	sb, in := newSandbox(t)
	unpause(sb, in)

	in.hold(cfg.ActionMoveForward)
	step(sb, 30)

	st := sb.Stats()
	assert.Greater(t, st.Position.X(), float32(0.5))
	assert.InDelta(t, 0, st.Position.Z(), 1e-3)
	assert.True(t, st.Grounded)
}

func TestHorizontalSpeedIsClamped(t *testing.T) {
	sb, in := newSandbox(t)
	unpause(sb, in)

	in.hold(cfg.ActionMoveForward, cfg.ActionMoveRight)
	step(sb, 300)

	v := sb.Stats().Velocity
	speed := mgl32.Vec2{v.X(), v.Z()}.Len()
	assert.LessOrEqual(t, speed, cfg.Player.MaxHorizontalSpeed+1e-3)
	assert.Greater(t, speed, float32(5))
}

func TestGroundedDetection(t *testing.T) {
	sb, _ := newSandbox(t)

	sb.Update()
	assert.True(t, sb.Stats().Grounded)

	sb.Engine().SetPosition(sb.Player(), mgl32.Vec3{0, 10, 0})
	sb.Update()
	assert.False(t, sb.Stats().Grounded)
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	sb, in := newSandbox(t)
	unpause(sb, in)

	in.hold(cfg.ActionJump)
	sb.Update()
	assert.Greater(t, sb.Stats().Velocity.Y(), float32(9))

	sb.Engine().SetPosition(sb.Player(), mgl32.Vec3{0, 10, 0})
	sb.Engine().SetVelocity(sb.Player(), mgl32.Vec3{})
	sb.Update()
	assert.LessOrEqual(t, sb.Stats().Velocity.Y(), float32(0))
}

func TestBallGunFiresEveryHeldFrame(t *testing.T) {
	sb, in := newSandbox(t)
	unpause(sb, in)

	in.hold(cfg.ActionFireBall)
	step(sb, 3)
	in.releaseAll()
	sb.Update()

	assert.Equal(t, 3, sb.Stats().LiveProps)
	for _, prop := range propEntities(sb.World()) {
		v, ok := sb.Engine().Velocity(prop)
		require.True(t, ok)
		assert.Greater(t, v.X(), float32(10))
	}
}

func TestDeleteRemovesPropInFront(t *testing.T) {
	sb, in := newSandbox(t)
	unpause(sb, in)

	in.hold(cfg.ActionFireBall)
	sb.Update()
	in.releaseAll()
	props := propEntities(sb.World())
	require.Len(t, props, 1)

	in.hold(cfg.ActionDelete)
	sb.Update()

	assert.Zero(t, sb.Stats().LiveProps)
	assert.False(t, sb.World().Valid(props[0]))
	_, ok := sb.Engine().Position(props[0])
	assert.False(t, ok)
}

func TestUpdatePlayerPanicsWithoutPlayer(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	stray := e.World.Create(components.Transform)
	ctx := &systems.Context{
		Engine: physics.NewWorld(physics.DefaultConfig()),
		Player: stray,
		Camera: stray,
	}

	assert.Panics(t, func() {
		systems.UpdatePlayer(ctx)(e)
	})
	assert.Panics(t, func() {
		systems.UpdateCamera(ctx)(e)
	})
}
