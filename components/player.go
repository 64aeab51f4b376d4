package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData is the first-person controller state. Position and velocity
// live in the physics body.
type PlayerData struct {
	Paused   bool
	Grounded bool
	Yaw      float32 // radians about world up
	Pitch    float32 // radians about local right, clamped to the configured max
}

var Player = donburi.NewComponentType[PlayerData]()
