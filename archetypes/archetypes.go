package archetypes

import (
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Body,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Transform,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Transform,
		components.Body,
	)
	Box = newArchetype(
		tags.Box,
		components.Transform,
		components.Body,
	)
	Blast = newArchetype(
		tags.Blast,
		components.Blast,
		components.Transform,
		components.Body,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Prop,
		components.Transform,
		components.Body,
	)
	PropCounter = newArchetype(
		components.PropCounter,
	)
	Input = newArchetype(
		components.Input,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(append(all, a.components...), cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
