package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Camera = donburi.NewTag().SetName("Camera")
	Blast  = donburi.NewTag().SetName("Blast")
	Prop   = donburi.NewTag().SetName("Prop")
	Floor  = donburi.NewTag().SetName("Floor")
	Box    = donburi.NewTag().SetName("Box")
)
