package systems

import (
	"github.com/automoto/rocketbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the physics world by the frame time and mirrors
// body poses into Transform components.
func UpdatePhysics(ctx *Context) ecs.System {
	return func(e *ecs.ECS) {
		ctx.Engine.Step(getOrCreateInput(e).Dt)

		components.Body.Each(e.World, func(entry *donburi.Entry) {
			ent := entry.Entity()
			pos, ok := ctx.Engine.Position(ent)
			if !ok {
				return
			}
			t := components.Transform.Get(entry)
			t.Position = pos
			t.Rotation, _ = ctx.Engine.Rotation(ent)
			t.Velocity, _ = ctx.Engine.Velocity(ent)
		})
	}
}
