package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Owner    donburi.Entity // player the camera rides on
	Offset   float32        // height above the owner's origin
	Rotation mgl32.Quat     // yaw then pitch, never rolls
}

var Camera = donburi.NewComponentType[CameraData]()

// Forward is the camera's -Z axis in world space.
func (c *CameraData) Forward() mgl32.Vec3 {
	return c.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// LookRotation composes yaw about world up with pitch about the local right
// axis. Applying yaw first keeps the horizon level.
func LookRotation(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
}
