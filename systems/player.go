package systems

import (
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/events"
	"github.com/automoto/rocketbox/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	worldUp   = mgl32.Vec3{0, 1, 0}
	worldDown = mgl32.Vec3{0, -1, 0}
)

// UpdatePlayer runs the first-person controller: pause toggle, look,
// grounded detection, movement, jump and weapon triggers.
func UpdatePlayer(ctx *Context) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		playerEntry := ctx.mustPlayer(e.World)
		cameraEntry := ctx.mustCamera(e.World)
		player := components.Player.Get(playerEntry)
		camera := components.Camera.Get(cameraEntry)

		updatePause(e, input, player)

		// Refreshed even while paused so resuming never sees a stale flag.
		player.Grounded = IsGrounded(ctx.Engine, ctx.Player)

		if player.Paused {
			return
		}

		updateLook(player, camera, input.MouseDX, input.MouseDY)
		intent := MovementIntent(input, player.Yaw)
		updateVelocity(ctx, input, player, intent)
		handleWeapons(e.World, ctx, input, camera)
	}
}

func updateLook(player *components.PlayerData, camera *components.CameraData, dx, dy float32) {
	sensitivity := mgl32.DegToRad(cfg.Player.LookSensitivity)
	limit := mgl32.DegToRad(cfg.Player.MaxPitch)

	player.Yaw -= dx * sensitivity
	player.Pitch = mgl32.Clamp(player.Pitch-dy*sensitivity, -limit, limit)
	camera.Rotation = components.LookRotation(player.Yaw, player.Pitch)
}

// MovementBasis returns the horizontal forward and right vectors for a yaw.
// Pitch is ignored so looking straight up or down never collapses them.
func MovementBasis(yaw float32) (forward, right mgl32.Vec3) {
	s, c := sincos(yaw)
	forward = mgl32.Vec3{-s, 0, -c}
	right = mgl32.Vec3{c, 0, -s}
	return forward, right
}

// MovementIntent sums the basis vectors of every held movement key and
// normalizes the result. Opposing keys cancel to exactly zero.
func MovementIntent(input *components.InputData, yaw float32) mgl32.Vec3 {
	forward, right := MovementBasis(yaw)

	var intent mgl32.Vec3
	if input.Current[cfg.ActionMoveForward] {
		intent = intent.Add(forward)
	}
	if input.Current[cfg.ActionMoveBack] {
		intent = intent.Add(forward.Mul(-1))
	}
	if input.Current[cfg.ActionMoveRight] {
		intent = intent.Add(right)
	}
	if input.Current[cfg.ActionMoveLeft] {
		intent = intent.Add(right.Mul(-1))
	}

	if intent.LenSqr() < 1e-12 {
		return mgl32.Vec3{}
	}
	return intent.Normalize()
}

// IsGrounded casts the player's ball a short way down against fixed,
// non-sensor geometry.
func IsGrounded(engine physics.Engine, player donburi.Entity) bool {
	pos, ok := engine.Position(player)
	if !ok {
		return false
	}
	_, hit := engine.CastShape(
		pos,
		mgl32.QuatIdent(),
		worldDown,
		physics.Ball(cfg.Player.Radius),
		cfg.Player.GroundProbeDistance,
		physics.OnlyFixed().WithoutSensors(),
	)
	return hit
}

func updateVelocity(ctx *Context, input *components.InputData, player *components.PlayerData, intent mgl32.Vec3) {
	v, ok := ctx.Engine.Velocity(ctx.Player)
	if !ok {
		panic("systems: player has no physics body")
	}

	if GetAction(input, cfg.ActionJump).Pressed && player.Grounded {
		v[1] = cfg.Player.JumpSpeed
	}

	before := horizontalSpeed(v)
	v = v.Add(intent.Mul(cfg.Player.Acceleration * input.Dt))
	v = clampHorizontal(v, before, cfg.Player.MaxHorizontalSpeed)

	ctx.Engine.SetVelocity(ctx.Player, v)
}

func horizontalSpeed(v mgl32.Vec3) float32 {
	return mgl32.Vec2{v.X(), v.Z()}.Len()
}

// clampHorizontal stops movement input from pushing the XZ speed past limit.
// Speed the body already had, from a blast for example, is kept. A zero
// limit disables the clamp.
func clampHorizontal(v mgl32.Vec3, before, limit float32) mgl32.Vec3 {
	if limit <= 0 {
		return v
	}
	speed := horizontalSpeed(v)
	allowed := limit
	if before > allowed {
		allowed = before
	}
	if speed <= allowed || speed == 0 {
		return v
	}
	scale := allowed / speed
	return mgl32.Vec3{v.X() * scale, v.Y(), v.Z() * scale}
}

func handleWeapons(w donburi.World, ctx *Context, input *components.InputData, camera *components.CameraData) {
	pos, ok := ctx.Engine.Position(ctx.Player)
	if !ok {
		panic("systems: player has no physics body")
	}
	forward := camera.Forward()

	if GetAction(input, cfg.ActionFireRocket).JustPressed {
		eye := pos.Add(worldUp.Mul(camera.Offset))
		filter := physics.OnlyFixed().WithoutSensors()
		if hit, ok := ctx.Engine.CastRay(eye, forward, cfg.Player.RocketRange, true, filter); ok {
			events.ShotRocket.Publish(w, events.ShotRocketEvent{Position: hit.Point})
			log.Debug().Float32("distance", hit.Toi).Msg("Rocket hit")
		}
	}

	if GetAction(input, cfg.ActionFireBall).Pressed {
		events.ShotBall.Publish(w, events.ShotBallEvent{
			Direction: forward,
			Position:  pos.Add(forward.Mul(cfg.Player.BallSpawnOffset)),
		})
	}

	if GetAction(input, cfg.ActionDelete).Pressed {
		origin := pos.Add(forward.Mul(cfg.Player.DeleteProbeOffset))
		filter := physics.OnlyDynamic().Excluding(ctx.Player)
		hit, ok := ctx.Engine.CastShape(origin, camera.Rotation, forward, physics.Ball(cfg.Player.DeleteProbeRadius), cfg.Player.DeleteRange, filter)
		if ok {
			events.DeleteBall.Publish(w, events.DeleteBallEvent{Entity: hit.Entity})
		}
	}
}
