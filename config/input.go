package config

import (
	"fmt"
	"strings"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionDelete
	ActionFireRocket
	ActionFireBall
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveForward: "forward",
	ActionMoveBack:    "back",
	ActionMoveLeft:    "left",
	ActionMoveRight:   "right",
	ActionJump:        "jump",
	ActionPause:       "pause",
	ActionDelete:      "delete",
	ActionFireRocket:  "rocket",
	ActionFireBall:    "ball",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a scenario/config action name to its ID.
func ParseAction(name string) (ActionID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id := ActionMoveForward; id < ActionCount; id++ {
		if actionNames[id] == name {
			return id, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
