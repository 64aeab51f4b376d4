package factory

import (
	"fmt"

	"github.com/automoto/rocketbox/archetypes"
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at pos with a locked-rotation ball body.
// The player starts paused, facing the configured initial yaw.
func CreatePlayer(ecs *ecs.ECS, engine physics.Engine, pos mgl32.Vec3) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	desc := physics.BodyDesc{
		Kind:          physics.Dynamic,
		Collider:      physics.Ball(cfg.Player.Radius),
		Position:      pos,
		Mass:          cfg.Player.Mass,
		LockRotations: true,
		CCD:           true,
		GravityScale:  physics.DefaultGravityScale,
		LinearDamping: cfg.Player.LinearDamping,
		Friction:      cfg.Player.Friction,
	}
	if err := spawnBody(ecs, engine, player, desc); err != nil {
		return nil, fmt.Errorf("could not create player: %w", err)
	}

	components.Player.SetValue(player, components.PlayerData{
		Paused: true,
		Yaw:    mgl32.DegToRad(cfg.Player.InitialYaw),
	})

	return player, nil
}

// spawnBody registers desc with the engine and mirrors it into the entry's
// Body and Transform. The entry is removed again if the engine refuses it.
func spawnBody(ecs *ecs.ECS, engine physics.Engine, entry *donburi.Entry, desc physics.BodyDesc) error {
	if err := engine.SpawnBody(entry.Entity(), desc); err != nil {
		ecs.World.Remove(entry.Entity())
		return err
	}
	components.Body.SetValue(entry, components.BodyData{
		Kind:     desc.Kind,
		Collider: desc.Collider,
		Sensor:   desc.Sensor,
	})
	components.Transform.SetValue(entry, components.TransformData{
		Position: desc.Position,
		Rotation: mgl32.QuatIdent(),
		Velocity: desc.Velocity,
	})
	return nil
}
