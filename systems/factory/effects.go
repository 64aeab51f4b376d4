package factory

import (
	"fmt"

	"github.com/automoto/rocketbox/archetypes"
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlast creates an explosion volume at pos. Its sensor body is visible
// to overlap queries and never collides.
func CreateBlast(ecs *ecs.ECS, engine physics.Engine, pos mgl32.Vec3) (*donburi.Entry, error) {
	blast := archetypes.Blast.Spawn(ecs)

	desc := physics.BodyDesc{
		Kind:     physics.Fixed,
		Collider: physics.Ball(cfg.Blast.Radius),
		Position: pos,
		Sensor:   true,
	}
	if err := spawnBody(ecs, engine, blast, desc); err != nil {
		return nil, fmt.Errorf("could not create blast: %w", err)
	}

	components.Blast.SetValue(blast, components.BlastData{
		Timer:  gween.New(0, 1, cfg.Blast.Duration, ease.Linear),
		Radius: cfg.Blast.Radius,
	})
	return blast, nil
}
