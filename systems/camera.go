package systems

import (
	"github.com/automoto/rocketbox/components"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera places the camera above the player with its look rotation.
// Must run AFTER UpdatePhysics.
func UpdateCamera(ctx *Context) ecs.System {
	return func(e *ecs.ECS) {
		cameraEntry := ctx.mustCamera(e.World)
		camera := components.Camera.Get(cameraEntry)
		player := components.Transform.Get(ctx.mustPlayer(e.World))

		t := components.Transform.Get(cameraEntry)
		t.Position = player.Position.Add(mgl32.Vec3{0, camera.Offset, 0})
		t.Rotation = camera.Rotation
		t.Velocity = player.Velocity
	}
}
