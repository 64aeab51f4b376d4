// Package events holds the trigger messages the player controller emits
// for the blast and ball gun systems. Each queue is drained once per frame
// by the system that owns it.
package events

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type ShotRocketEvent struct {
	Position mgl32.Vec3
}

type ShotBallEvent struct {
	Direction mgl32.Vec3
	Position  mgl32.Vec3
}

type DeleteBallEvent struct {
	Entity donburi.Entity
}

var (
	ShotRocket = events.NewEventType[ShotRocketEvent]()
	ShotBall   = events.NewEventType[ShotBallEvent]()
	DeleteBall = events.NewEventType[DeleteBallEvent]()
)

// Flush hands any trigger still queued to its subscriber so nothing is
// carried into the next frame.
func Flush(w donburi.World) {
	events.ProcessAllEvents(w)
}
