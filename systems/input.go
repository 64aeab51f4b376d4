package systems

import (
	"github.com/automoto/rocketbox/archetypes"
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/yohamta/donburi/ecs"
)

// InputSource produces one input sample per frame.
type InputSource interface {
	Sample() components.InputSample
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() components.InputSample

func (f InputSourceFunc) Sample() components.InputSample {
	return f()
}

// UpdateInput samples src once and stores it in the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		sample := src.Sample()

		// Swap buffers: current becomes previous
		input.Previous = input.Current
		input.Current = sample.Held
		input.MouseDX = sample.MouseDX
		input.MouseDY = sample.MouseDY
		input.Dt = sample.Dt
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
