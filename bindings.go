package main

import (
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// binding maps an action to keyboard keys and mouse buttons.
type binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.MouseButton
}

var bindings = [cfg.ActionCount]binding{
	cfg.ActionMoveForward: {Keys: []ebiten.Key{ebiten.KeyW}},
	cfg.ActionMoveBack:    {Keys: []ebiten.Key{ebiten.KeyS}},
	cfg.ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA}},
	cfg.ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD}},
	cfg.ActionJump:        {Keys: []ebiten.Key{ebiten.KeySpace}},
	cfg.ActionPause:       {Keys: []ebiten.Key{ebiten.KeyEscape}},
	cfg.ActionDelete:      {Keys: []ebiten.Key{ebiten.KeyDelete, ebiten.KeyQ}},
	cfg.ActionFireRocket:  {Buttons: []ebiten.MouseButton{ebiten.MouseButtonRight}},
	cfg.ActionFireBall:    {Buttons: []ebiten.MouseButton{ebiten.MouseButtonLeft}},
}

// windowInput samples the ebiten keyboard and mouse once per frame.
type windowInput struct {
	lastX, lastY int
	primed       bool
}

func (in *windowInput) Sample() components.InputSample {
	var sample components.InputSample

	for id, b := range bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				sample.Held[id] = true
			}
		}
		for _, btn := range b.Buttons {
			if ebiten.IsMouseButtonPressed(btn) {
				sample.Held[id] = true
			}
		}
	}

	// Captured cursors report an unbounded position, so differences are
	// raw mouse motion.
	x, y := ebiten.CursorPosition()
	if in.primed {
		sample.MouseDX = float32(x - in.lastX)
		sample.MouseDY = float32(y - in.lastY)
	}
	in.lastX, in.lastY, in.primed = x, y, true

	sample.Dt = 1 / float32(ebiten.TPS())
	return sample
}
