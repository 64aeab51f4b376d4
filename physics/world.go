package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// Config holds the world-wide simulation parameters.
type Config struct {
	Gravity     mgl32.Vec3
	FixedStep   float32
	MaxSubsteps int
	// Bounds is the half size of the broadphase grid on X and Z. Bodies
	// outside it still simulate, they just skip the grid.
	Bounds   float32
	CellSize int
}

// DefaultConfig matches the sandbox defaults.
func DefaultConfig() Config {
	return Config{
		Gravity:     mgl32.Vec3{0, -9.81, 0},
		FixedStep:   1.0 / 60.0,
		MaxSubsteps: 8,
		Bounds:      256,
		CellSize:    4,
	}
}

// World is the Engine implementation. It is not safe for concurrent use.
type World struct {
	cfg Config

	bodies   []*body
	byEntity map[donburi.Entity]*body
	nextSeq  uint64

	bp          *broadphase
	accumulator float32
	ticks       uint64
}

var _ Engine = (*World)(nil)

func NewWorld(cfg Config) *World {
	if cfg.FixedStep <= 0 {
		cfg.FixedStep = DefaultConfig().FixedStep
	}
	if cfg.MaxSubsteps < 1 {
		cfg.MaxSubsteps = 1
	}
	if cfg.Bounds <= 0 {
		cfg.Bounds = DefaultConfig().Bounds
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultConfig().CellSize
	}
	return &World{
		cfg:      cfg,
		byEntity: map[donburi.Entity]*body{},
		bp:       newBroadphase(cfg.Bounds, cfg.CellSize),
	}
}

func (w *World) SpawnBody(e donburi.Entity, desc BodyDesc) error {
	if _, ok := w.byEntity[e]; ok {
		return fmt.Errorf("%w: %v", ErrBodyExists, e)
	}
	switch {
	case desc.Kind == Dynamic && desc.Collider.Kind != ShapeBall:
		return fmt.Errorf("%w: dynamic %s", ErrUnsupportedShape, desc.Collider.Kind)
	case desc.Collider.Kind == ShapeBall && desc.Collider.Radius <= 0:
		return fmt.Errorf("%w: ball radius %v", ErrUnsupportedShape, desc.Collider.Radius)
	}

	w.nextSeq++
	b := newBody(e, w.nextSeq, desc)
	w.bodies = append(w.bodies, b)
	w.byEntity[e] = b
	w.bp.insert(b)

	log.Debug().
		Str("kind", desc.Kind.String()).
		Str("shape", desc.Collider.Kind.String()).
		Bool("sensor", desc.Sensor).
		Msg("Body spawned")
	return nil
}

func (w *World) DespawnBody(e donburi.Entity) {
	b, ok := w.byEntity[e]
	if !ok {
		return
	}
	w.bp.remove(b)
	delete(w.byEntity, e)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

func (w *World) Position(e donburi.Entity) (mgl32.Vec3, bool) {
	b, ok := w.byEntity[e]
	if !ok {
		return mgl32.Vec3{}, false
	}
	return b.pos, true
}

func (w *World) SetPosition(e donburi.Entity, p mgl32.Vec3) {
	if b, ok := w.byEntity[e]; ok {
		b.pos = p
		w.bp.sync(b)
	}
}

func (w *World) Rotation(e donburi.Entity) (mgl32.Quat, bool) {
	b, ok := w.byEntity[e]
	if !ok {
		return mgl32.QuatIdent(), false
	}
	return b.rot, true
}

func (w *World) Velocity(e donburi.Entity) (mgl32.Vec3, bool) {
	b, ok := w.byEntity[e]
	if !ok {
		return mgl32.Vec3{}, false
	}
	return b.vel, true
}

// SetVelocity is ignored for fixed bodies.
func (w *World) SetVelocity(e donburi.Entity, v mgl32.Vec3) {
	if b, ok := w.byEntity[e]; ok && b.kind == Dynamic {
		b.vel = v
	}
}

// Len is the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Ticks is the number of fixed steps simulated so far.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Step runs as many fixed substeps as dt covers, capped at MaxSubsteps.
// Time beyond the cap is dropped.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	w.accumulator += dt

	n := 0
	for w.accumulator >= w.cfg.FixedStep && n < w.cfg.MaxSubsteps {
		w.substep(w.cfg.FixedStep)
		w.accumulator -= w.cfg.FixedStep
		n++
	}
	if n == w.cfg.MaxSubsteps && w.accumulator >= w.cfg.FixedStep {
		log.Debug().Float32("dropped", w.accumulator).Msg("Physics fell behind")
		w.accumulator = 0
	}
}

func (w *World) substep(h float32) {
	for _, b := range w.bodies {
		if b.kind != Dynamic {
			continue
		}
		w.integrate(b, h)
	}
	w.resolveContacts()
	w.ticks++
}

func (w *World) integrate(b *body, h float32) {
	b.vel = b.vel.Add(w.cfg.Gravity.Mul(b.gravityScale * h))
	if b.linearDamping > 0 {
		b.vel = b.vel.Mul(1 / (1 + h*b.linearDamping))
	}
	if b.angularDamping > 0 {
		b.angVel = b.angVel.Mul(1 / (1 + h*b.angularDamping))
	}

	disp := b.vel.Mul(h)
	if b.ccd && !b.sensor && disp.Len() > b.collider.Radius*0.5 {
		w.sweep(b, disp)
	} else {
		b.pos = b.pos.Add(disp)
	}

	if b.lockRot {
		b.angVel = mgl32.Vec3{}
	} else if b.angVel.LenSqr() > 0 {
		spin := mgl32.Quat{V: b.angVel}.Mul(b.rot).Scale(0.5 * h)
		b.rot = b.rot.Add(spin).Normalize()
	}

	w.bp.sync(b)
}

// sweep moves a fast ball along disp, stopping at the first fixed collider
// and sliding the rest of the way along its surface.
func (w *World) sweep(b *body, disp mgl32.Vec3) {
	dist := disp.Len()
	dir := disp.Mul(1 / dist)
	filter := OnlyFixed().WithoutSensors().Excluding(b.entity)

	hit, other, ok := w.castBall(b.pos, dir, b.collider.Radius, dist, filter)
	if !ok {
		b.pos = b.pos.Add(disp)
		return
	}

	rest := disp.Sub(dir.Mul(hit.Toi))
	if into := rest.Dot(hit.Normal); into < 0 {
		rest = rest.Sub(hit.Normal.Mul(into))
	}
	b.pos = b.pos.Add(dir.Mul(hit.Toi)).Add(rest)
	respondFixed(b, other, hit.Normal)
}
