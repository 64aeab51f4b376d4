package components

import (
	cfg "github.com/automoto/rocketbox/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputSample is one frame of raw input as read from a window or a script.
type InputSample struct {
	Held    [cfg.ActionCount]bool
	MouseDX float32
	MouseDY float32
	Dt      float32 // seconds since the previous frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	MouseDX  float32
	MouseDY  float32
	Dt       float32
}

var Input = donburi.NewComponentType[InputData]()
