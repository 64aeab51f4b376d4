package headless

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	n atomic.Int64
}

func (c *counter) Update() {
	c.n.Add(1)
}

func TestGameLoopFrameLimit(t *testing.T) {
	target := &counter{}
	loop := NewGameLoop(target, 60).WithFrameLimit(25).WithRealtime(false)
	loop.Run()

	assert.Equal(t, uint64(25), loop.Frames())
	assert.Equal(t, int64(25), target.n.Load())
}

func TestGameLoopRealtimeTicks(t *testing.T) {
	target := &counter{}
	loop := NewGameLoop(target, 200).WithFrameLimit(5)

	start := time.Now()
	loop.Run()

	assert.Equal(t, int64(5), target.n.Load())
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestGameLoopStop(t *testing.T) {
	target := &counter{}
	loop := NewGameLoop(target, 1000)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	assert.Eventually(t, func() bool { return target.n.Load() > 3 }, time.Second, time.Millisecond)
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestNewGameLoopDefaultsTickRate(t *testing.T) {
	loop := NewGameLoop(&counter{}, 0)
	assert.Equal(t, 60, loop.tickRate)
}
