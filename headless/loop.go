// Package headless runs a sandbox without a window, driven by a fixed tick
// and scripted input.
package headless

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Updater is stepped once per tick.
type Updater interface {
	Update()
}

type GameLoop struct {
	target    Updater
	tickRate  int
	maxFrames uint64
	realtime  bool
	frames    uint64
	stopChan  chan struct{}
}

// NewGameLoop ticks target tickRate times per second of wall time.
func NewGameLoop(target Updater, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		target:   target,
		tickRate: tickRate,
		realtime: true,
		stopChan: make(chan struct{}),
	}
}

// WithFrameLimit stops the loop after n ticks. Zero means no limit.
func (g *GameLoop) WithFrameLimit(n uint64) *GameLoop {
	g.maxFrames = n
	return g
}

// WithRealtime selects between ticking on a wall-clock ticker and ticking
// as fast as possible.
func (g *GameLoop) WithRealtime(realtime bool) *GameLoop {
	g.realtime = realtime
	return g
}

// Frames is the number of ticks run so far.
func (g *GameLoop) Frames() uint64 {
	return g.frames
}

// Run blocks until Stop is called or the frame limit is reached.
func (g *GameLoop) Run() {
	log.Info().
		Int("tickrate", g.tickRate).
		Bool("realtime", g.realtime).
		Uint64("frames", g.maxFrames).
		Msg("Game loop started")

	if g.realtime {
		g.runTicker()
	} else {
		g.runFast()
	}

	log.Info().Uint64("frames", g.frames).Msg("Game loop stopped")
}

func (g *GameLoop) runTicker() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-g.stopChan:
			return
		case <-ticker.C:
			if g.tick() {
				return
			}
		}
	}
}

func (g *GameLoop) runFast() {
	for {
		select {
		case <-g.stopChan:
			return
		default:
			if g.tick() {
				return
			}
		}
	}
}

// Stop ends Run. It must be called at most once.
func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// tick reports whether the frame limit has been reached.
func (g *GameLoop) tick() bool {
	g.target.Update()
	g.frames++
	return g.maxFrames > 0 && g.frames >= g.maxFrames
}
