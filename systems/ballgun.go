package systems

import (
	"github.com/automoto/rocketbox/archetypes"
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/events"
	"github.com/automoto/rocketbox/systems/factory"
	"github.com/automoto/rocketbox/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnPropOnShot returns the ShotBall subscriber.
func SpawnPropOnShot(e *ecs.ECS, ctx *Context) func(w donburi.World, ev events.ShotBallEvent) {
	return func(w donburi.World, ev events.ShotBallEvent) {
		prop, err := factory.CreateProp(e, ctx.Engine, ev.Position, ev.Direction.Mul(cfg.Prop.LaunchSpeed))
		if err != nil {
			log.Error().Err(err).Msg("Could not spawn prop")
			return
		}
		components.Prop.SetValue(prop, components.PropData{SpawnedAt: ctx.Frame})

		counter := GetOrCreatePropCounter(e)
		counter.Live++
		counter.Spawned++
		log.Debug().Int("live", counter.Live).Msg("Prop spawned")
	}
}

// DeletePropOnHit returns the DeleteBall subscriber. Entities that are gone
// or are not props are ignored.
func DeletePropOnHit(e *ecs.ECS, ctx *Context) func(w donburi.World, ev events.DeleteBallEvent) {
	return func(w donburi.World, ev events.DeleteBallEvent) {
		if !w.Valid(ev.Entity) {
			return
		}
		if !w.Entry(ev.Entity).HasComponent(tags.Prop) {
			return
		}

		ctx.Engine.DespawnBody(ev.Entity)
		w.Remove(ev.Entity)

		counter := GetOrCreatePropCounter(e)
		counter.Live--
		counter.Deleted++
		log.Debug().Int("live", counter.Live).Msg("Prop deleted")
	}
}

// UpdateBallGun drains the ShotBall and DeleteBall queues.
func UpdateBallGun(ctx *Context) ecs.System {
	return func(e *ecs.ECS) {
		events.ShotBall.ProcessEvents(e.World)
		events.DeleteBall.ProcessEvents(e.World)
	}
}

// GetOrCreatePropCounter returns the singleton PropCounter component, creating if needed.
func GetOrCreatePropCounter(ecs *ecs.ECS) *components.PropCounterData {
	entry, ok := components.PropCounter.First(ecs.World)
	if !ok {
		entry = archetypes.PropCounter.Spawn(ecs)
	}
	return components.PropCounter.Get(entry)
}
