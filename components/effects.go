package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BlastData is a short-lived explosion volume.
type BlastData struct {
	Timer    *gween.Tween // counts 0..1 over the blast lifetime
	Radius   float32
	Progress float32
	Expired  bool
}

var Blast = donburi.NewComponentType[BlastData]()
