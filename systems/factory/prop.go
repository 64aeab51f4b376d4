package factory

import (
	"fmt"

	"github.com/automoto/rocketbox/archetypes"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProp spawns a small dynamic ball at pos moving with vel.
func CreateProp(ecs *ecs.ECS, engine physics.Engine, pos, vel mgl32.Vec3) (*donburi.Entry, error) {
	prop := archetypes.Prop.Spawn(ecs)

	desc := physics.BodyDesc{
		Kind:           physics.Dynamic,
		Collider:       physics.Ball(cfg.Prop.Radius),
		Position:       pos,
		Velocity:       vel,
		Mass:           cfg.Prop.Mass,
		CCD:            true,
		GravityScale:   physics.DefaultGravityScale,
		LinearDamping:  cfg.Prop.LinearDamping,
		AngularDamping: cfg.Prop.AngularDamping,
		Restitution:    cfg.Prop.Restitution,
		Friction:       cfg.Prop.Friction,
	}
	if err := spawnBody(ecs, engine, prop, desc); err != nil {
		return nil, fmt.Errorf("could not create prop: %w", err)
	}
	return prop, nil
}
