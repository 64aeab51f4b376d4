package factory

import (
	"fmt"

	"github.com/automoto/rocketbox/archetypes"
	"github.com/automoto/rocketbox/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloor creates an infinite static plane at height y facing up.
func CreateFloor(ecs *ecs.ECS, engine physics.Engine, y, friction float32) (*donburi.Entry, error) {
	floor := archetypes.Floor.Spawn(ecs)

	desc := physics.BodyDesc{
		Kind:     physics.Fixed,
		Collider: physics.HalfSpace(mgl32.Vec3{0, 1, 0}),
		Position: mgl32.Vec3{0, y, 0},
		Friction: friction,
	}
	if err := spawnBody(ecs, engine, floor, desc); err != nil {
		return nil, fmt.Errorf("could not create floor: %w", err)
	}
	return floor, nil
}

// CreateBox creates a static axis-aligned box centered on center.
func CreateBox(ecs *ecs.ECS, engine physics.Engine, center, halfExtents mgl32.Vec3, friction float32) (*donburi.Entry, error) {
	box := archetypes.Box.Spawn(ecs)

	desc := physics.BodyDesc{
		Kind:     physics.Fixed,
		Collider: physics.Cuboid(halfExtents.X(), halfExtents.Y(), halfExtents.Z()),
		Position: center,
		Friction: friction,
	}
	if err := spawnBody(ecs, engine, box, desc); err != nil {
		return nil, fmt.Errorf("could not create box: %w", err)
	}
	return box, nil
}
