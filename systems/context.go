package systems

import (
	"github.com/automoto/rocketbox/components"
	"github.com/automoto/rocketbox/physics"
	"github.com/yohamta/donburi"
)

// Context carries the handles the gameplay systems share. It is built once
// by the scene and injected into every system.
type Context struct {
	Engine physics.Engine
	Player donburi.Entity
	Camera donburi.Entity

	// Frame counts completed sandbox updates.
	Frame uint64
}

// mustPlayer returns the player entry. A missing player means the scene was
// built wrong, so it panics.
func (c *Context) mustPlayer(w donburi.World) *donburi.Entry {
	if !w.Valid(c.Player) {
		panic("systems: player entity is missing")
	}
	entry := w.Entry(c.Player)
	if !entry.HasComponent(components.Player) {
		panic("systems: player entity has no Player component")
	}
	return entry
}

// mustCamera returns the camera entry, panicking like mustPlayer.
func (c *Context) mustCamera(w donburi.World) *donburi.Entry {
	if !w.Valid(c.Camera) {
		panic("systems: camera entity is missing")
	}
	entry := w.Entry(c.Camera)
	if !entry.HasComponent(components.Camera) {
		panic("systems: camera entity has no Camera component")
	}
	return entry
}
