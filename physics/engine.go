// Package physics is the rigid-body world the sandbox runs on: balls,
// axis-aligned boxes and half-spaces, fixed-step integration with contact
// resolution, and the ray, shape and overlap queries gameplay code uses.
// Right-handed, Y-up.
package physics

//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks github.com/automoto/rocketbox/physics Engine

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

var (
	ErrBodyExists       = errors.New("physics: entity already has a body")
	ErrUnsupportedShape = errors.New("physics: unsupported shape for body kind")
)

// Engine is the capability set gameplay systems need from a physics backend.
type Engine interface {
	SpawnBody(e donburi.Entity, desc BodyDesc) error
	DespawnBody(e donburi.Entity)

	Position(e donburi.Entity) (mgl32.Vec3, bool)
	SetPosition(e donburi.Entity, p mgl32.Vec3)
	Rotation(e donburi.Entity) (mgl32.Quat, bool)
	Velocity(e donburi.Entity) (mgl32.Vec3, bool)
	SetVelocity(e donburi.Entity, v mgl32.Vec3)

	// CastRay returns the nearest hit along dir within maxToi. A solid
	// ray starting inside a collider hits it at toi 0.
	CastRay(origin, dir mgl32.Vec3, maxToi float32, solid bool, filter QueryFilter) (RayHit, bool)
	// CastShape sweeps shape from origin along dir and returns the first
	// collider it touches within maxToi. Colliders already overlapping the
	// shape at origin are hit at toi 0.
	CastShape(origin mgl32.Vec3, rot mgl32.Quat, dir mgl32.Vec3, shape Collider, maxToi float32, filter QueryFilter) (ShapeHit, bool)
	// IntersectionsWithShape calls fn for every collider overlapping shape
	// placed at pos, in spawn order, until fn returns false.
	IntersectionsWithShape(pos mgl32.Vec3, rot mgl32.Quat, shape Collider, filter QueryFilter, fn func(e donburi.Entity) bool)

	// Step advances the simulation by dt seconds of wall time.
	Step(dt float32)
}

// KindMask selects body kinds in a QueryFilter.
type KindMask uint8

const (
	MaskFixed KindMask = 1 << iota
	MaskDynamic
)

// QueryFilter narrows the colliders a query may report.
type QueryFilter struct {
	Kinds          KindMask // zero means every kind
	ExcludeSensors bool
	Exclude        []donburi.Entity
}

// OnlyFixed matches fixed bodies.
func OnlyFixed() QueryFilter {
	return QueryFilter{Kinds: MaskFixed}
}

// OnlyDynamic matches dynamic bodies.
func OnlyDynamic() QueryFilter {
	return QueryFilter{Kinds: MaskDynamic}
}

// WithoutSensors returns a copy of f that skips sensor colliders.
func (f QueryFilter) WithoutSensors() QueryFilter {
	f.ExcludeSensors = true
	return f
}

// Excluding returns a copy of f that skips the given entities.
func (f QueryFilter) Excluding(es ...donburi.Entity) QueryFilter {
	f.Exclude = append(append([]donburi.Entity(nil), f.Exclude...), es...)
	return f
}

func (f QueryFilter) accepts(b *body) bool {
	if f.Kinds != 0 && f.Kinds&b.kind.mask() == 0 {
		return false
	}
	if f.ExcludeSensors && b.sensor {
		return false
	}
	for _, e := range f.Exclude {
		if e == b.entity {
			return false
		}
	}
	return true
}

// RayHit is the nearest collider hit by a ray.
type RayHit struct {
	Entity donburi.Entity
	Toi    float32
	Point  mgl32.Vec3
	Normal mgl32.Vec3
}

// ShapeHit is the first collider touched by a shape cast.
type ShapeHit struct {
	Entity donburi.Entity
	Toi    float32
	Normal mgl32.Vec3 // points from the hit collider toward the cast shape
}
