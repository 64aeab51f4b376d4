package components

import "github.com/yohamta/donburi"

type PropData struct {
	SpawnedAt uint64 // sandbox frame
}

var Prop = donburi.NewComponentType[PropData]()

// PropCounterData is the process-wide live prop count.
type PropCounterData struct {
	Live    int
	Spawned int
	Deleted int
}

var PropCounter = donburi.NewComponentType[PropCounterData]()
