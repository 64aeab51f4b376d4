package systems

import (
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/events"
	"github.com/automoto/rocketbox/physics"
	"github.com/automoto/rocketbox/systems/factory"
	"github.com/automoto/rocketbox/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBlastOnRocket returns the ShotRocket subscriber.
func SpawnBlastOnRocket(e *ecs.ECS, ctx *Context) func(w donburi.World, ev events.ShotRocketEvent) {
	return func(w donburi.World, ev events.ShotRocketEvent) {
		if _, err := factory.CreateBlast(e, ctx.Engine, ev.Position); err != nil {
			log.Error().Err(err).Msg("Could not spawn blast")
			return
		}
		log.Debug().
			Float32("x", ev.Position.X()).
			Float32("y", ev.Position.Y()).
			Float32("z", ev.Position.Z()).
			Msg("Blast spawned")
	}
}

// UpdateBlasts drains pending rockets, then ticks every blast and pushes the
// dynamic bodies inside it. A blast whose timer finishes this frame still
// pushes once before it is removed.
func UpdateBlasts(ctx *Context) ecs.System {
	return func(e *ecs.ECS) {
		events.ShotRocket.ProcessEvents(e.World)

		dt := getOrCreateInput(e).Dt
		var expired []*donburi.Entry

		tags.Blast.Each(e.World, func(entry *donburi.Entry) {
			blast := components.Blast.Get(entry)

			progress, finished := blast.Timer.Update(dt)
			blast.Progress = progress
			if finished && !blast.Expired {
				blast.Expired = true
				expired = append(expired, entry)
			}

			center := components.Transform.Get(entry).Position
			applyBlast(e.World, ctx, center, blast.Radius, dt)
		})

		for _, entry := range expired {
			ctx.Engine.DespawnBody(entry.Entity())
			e.World.Remove(entry.Entity())
		}
	}
}

// applyBlast adds an outward push to every dynamic body overlapping the
// blast ball. The push ignores mass.
func applyBlast(w donburi.World, ctx *Context, center mgl32.Vec3, radius, dt float32) {
	ctx.Engine.IntersectionsWithShape(center, mgl32.QuatIdent(), physics.Ball(radius), physics.OnlyDynamic(), func(target donburi.Entity) bool {
		pos, ok := ctx.Engine.Position(target)
		if !ok {
			return true
		}

		offset := pos.Sub(center)
		if offset.LenSqr() < 1e-12 {
			offset = worldUp.Mul(radius)
		}

		v, _ := ctx.Engine.Velocity(target)
		ctx.Engine.SetVelocity(target, v.Add(offset.Mul(dt*cfg.Blast.Force)))

		if target == ctx.Player {
			components.Player.Get(ctx.mustPlayer(w)).Grounded = false
		}
		return true
	})
}
