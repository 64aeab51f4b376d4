package components

import (
	"github.com/automoto/rocketbox/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData mirrors the pose of an entity after the physics step.
// Cameras have no body and are positioned by the camera system.
type TransformData struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Velocity mgl32.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// BodyData records what an entity was registered with in the physics world.
type BodyData struct {
	Kind     physics.BodyKind
	Collider physics.Collider
	Sensor   bool
}

var Body = donburi.NewComponentType[BodyData]()
