package systems_test

import (
	"testing"

	"github.com/automoto/rocketbox/archetypes"
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/events"
	"github.com/automoto/rocketbox/physics"
	"github.com/automoto/rocketbox/physics/mocks"
	"github.com/automoto/rocketbox/systems"
	"github.com/automoto/rocketbox/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/mock/gomock"
)

// newMockScene builds a player and camera without spawning bodies, so every
// engine call the systems make has to be expected.
func newMockScene(t *testing.T, paused bool) (*ecs.ECS, *systems.Context, *mocks.MockEngine) {
	cfg.Reset()
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)

	e := ecs.NewECS(donburi.NewWorld())
	player := archetypes.Player.Spawn(e)
	components.Player.SetValue(player, components.PlayerData{
		Paused: paused,
		Yaw:    mgl32.DegToRad(cfg.Player.InitialYaw),
	})
	camera := factory.CreateCamera(e, player)

	return e, &systems.Context{
		Engine: engine,
		Player: player.Entity(),
		Camera: camera.Entity(),
	}, engine
}

func TestPausedPlayerOnlyProbesGround(t *testing.T) {
	e, ctx, engine := newMockScene(t, true)
	pos := mgl32.Vec3{1, 0.5, 2}

	engine.EXPECT().Position(ctx.Player).Return(pos, true)
	engine.EXPECT().CastShape(
		pos,
		mgl32.QuatIdent(),
		mgl32.Vec3{0, -1, 0},
		physics.Ball(cfg.Player.Radius),
		cfg.Player.GroundProbeDistance,
		physics.OnlyFixed().WithoutSensors(),
	).Return(physics.ShapeHit{}, true)

	systems.UpdatePlayer(ctx)(e)

	player := components.Player.Get(e.World.Entry(ctx.Player))
	assert.True(t, player.Grounded)
	assert.True(t, player.Paused)
}

func TestRocketRaycastsFromEye(t *testing.T) {
	e, ctx, engine := newMockScene(t, false)
	pos := mgl32.Vec3{0, 0.5, 0}
	target := mgl32.Vec3{6, 0.5, 0}

	var rocket components.InputSample
	rocket.Held[cfg.ActionFireRocket] = true
	rocket.Dt = frameDt
	systems.UpdateInput(systems.InputSourceFunc(func() components.InputSample { return rocket }))(e)

	engine.EXPECT().Position(ctx.Player).Return(pos, true).AnyTimes()
	engine.EXPECT().CastShape(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(physics.ShapeHit{}, false)
	engine.EXPECT().Velocity(ctx.Player).Return(mgl32.Vec3{}, true)
	engine.EXPECT().SetVelocity(ctx.Player, mgl32.Vec3{})
	engine.EXPECT().
		CastRay(mgl32.Vec3{0, 0.5 + cfg.Camera.Offset, 0}, gomock.Any(), cfg.Player.RocketRange, true, physics.OnlyFixed().WithoutSensors()).
		DoAndReturn(func(origin, dir mgl32.Vec3, maxToi float32, solid bool, filter physics.QueryFilter) (physics.RayHit, bool) {
			assert.InDelta(t, 1, dir.X(), 1e-5)
			return physics.RayHit{Point: target, Toi: 6}, true
		})

	var shots []events.ShotRocketEvent
	events.ShotRocket.Subscribe(e.World, func(w donburi.World, ev events.ShotRocketEvent) {
		shots = append(shots, ev)
	})

	systems.UpdatePlayer(ctx)(e)
	events.ShotRocket.ProcessEvents(e.World)

	require.Len(t, shots, 1)
	assert.Equal(t, target, shots[0].Position)
}

func TestRocketMissPublishesNothing(t *testing.T) {
	e, ctx, engine := newMockScene(t, false)

	var rocket components.InputSample
	rocket.Held[cfg.ActionFireRocket] = true
	rocket.Dt = frameDt
	systems.UpdateInput(systems.InputSourceFunc(func() components.InputSample { return rocket }))(e)

	engine.EXPECT().Position(ctx.Player).Return(mgl32.Vec3{}, true).AnyTimes()
	engine.EXPECT().CastShape(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(physics.ShapeHit{}, false)
	engine.EXPECT().Velocity(ctx.Player).Return(mgl32.Vec3{}, true)
	engine.EXPECT().SetVelocity(ctx.Player, gomock.Any())
	engine.EXPECT().CastRay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(physics.RayHit{}, false)

	fired := 0
	events.ShotRocket.Subscribe(e.World, func(donburi.World, events.ShotRocketEvent) {
		fired++
	})

	systems.UpdatePlayer(ctx)(e)
	events.ShotRocket.ProcessEvents(e.World)
	assert.Zero(t, fired)
}
