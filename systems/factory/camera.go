package factory

import (
	"github.com/automoto/rocketbox/archetypes"
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera attaches a camera to the player entry.
func CreateCamera(ecs *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	look := components.Player.Get(player)
	rot := components.LookRotation(look.Yaw, look.Pitch)
	components.Camera.SetValue(camera, components.CameraData{
		Owner:    player.Entity(),
		Offset:   cfg.Camera.Offset,
		Rotation: rot,
	})

	origin := components.Transform.Get(player).Position
	components.Transform.SetValue(camera, components.TransformData{
		Position: origin.Add(mgl32.Vec3{0, cfg.Camera.Offset, 0}),
		Rotation: rot,
	})
	return camera
}
