package systems_test

import (
	"github.com/automoto/rocketbox/components"
	cfg "github.com/automoto/rocketbox/config"
	"github.com/automoto/rocketbox/scenes"
	"github.com/automoto/rocketbox/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const frameDt = float32(1.0 / 60.0)

// fakeInput holds actions until released. Mouse deltas last one frame.
type fakeInput struct {
	held   [cfg.ActionCount]bool
	dx, dy float32
}

func (f *fakeInput) Sample() components.InputSample {
	s := components.InputSample{Held: f.held, MouseDX: f.dx, MouseDY: f.dy, Dt: frameDt}
	f.dx, f.dy = 0, 0
	return s
}

func (f *fakeInput) hold(ids ...cfg.ActionID) {
	for _, id := range ids {
		f.held[id] = true
	}
}

func (f *fakeInput) releaseAll() {
	f.held = [cfg.ActionCount]bool{}
}

func (f *fakeInput) look(dx, dy float32) {
	f.dx, f.dy = dx, dy
}

func newSandbox(t require.TestingT) (*scenes.Sandbox, *fakeInput) {
	cfg.Reset()
	in := &fakeInput{}
	sb, err := scenes.NewDefaultSandbox(in)
	require.NoError(t, err)
	return sb, in
}

// unpause runs one frame with the pause key down and releases it.
func unpause(sb *scenes.Sandbox, in *fakeInput) {
	in.hold(cfg.ActionPause)
	sb.Update()
	in.releaseAll()
}

func step(sb *scenes.Sandbox, frames int) {
	for i := 0; i < frames; i++ {
		sb.Update()
	}
}

func propEntities(w donburi.World) []donburi.Entity {
	var out []donburi.Entity
	tags.Prop.Each(w, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}
