package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyKind is how a body takes part in the simulation.
type BodyKind int

const (
	Fixed BodyKind = iota
	Dynamic
)

func (k BodyKind) mask() KindMask {
	if k == Dynamic {
		return MaskDynamic
	}
	return MaskFixed
}

func (k BodyKind) String() string {
	if k == Dynamic {
		return "dynamic"
	}
	return "fixed"
}

// BodyDesc describes a body to spawn.
type BodyDesc struct {
	Kind     BodyKind
	Collider Collider
	Position mgl32.Vec3
	Velocity mgl32.Vec3

	// Sensor colliders show up in queries but never collide.
	Sensor bool
	// LockRotations keeps the body from ever spinning.
	LockRotations bool
	// CCD sweeps fast bodies against fixed geometry so they cannot tunnel.
	CCD bool

	Mass           float32 // 0 derives mass from the collider volume
	LinearDamping  float32
	AngularDamping float32
	GravityScale   float32 // multiplied with world gravity; see DefaultGravityScale
	Restitution    float32
	Friction       float32
}

// DefaultGravityScale is what most dynamic bodies want. A zero GravityScale
// in a BodyDesc means no gravity.
const DefaultGravityScale = 1

type body struct {
	entity donburi.Entity
	seq    uint64

	kind     BodyKind
	collider Collider
	sensor   bool
	lockRot  bool
	ccd      bool

	pos    mgl32.Vec3
	rot    mgl32.Quat
	vel    mgl32.Vec3
	angVel mgl32.Vec3

	invMass        float32
	linearDamping  float32
	angularDamping float32
	gravityScale   float32
	restitution    float32
	friction       float32

	proxy   *resolv.Object
	gridded bool
}

func newBody(e donburi.Entity, seq uint64, desc BodyDesc) *body {
	b := &body{
		entity:         e,
		seq:            seq,
		kind:           desc.Kind,
		collider:       desc.Collider,
		sensor:         desc.Sensor,
		lockRot:        desc.LockRotations,
		ccd:            desc.CCD,
		pos:            desc.Position,
		rot:            mgl32.QuatIdent(),
		vel:            desc.Velocity,
		linearDamping:  desc.LinearDamping,
		angularDamping: desc.AngularDamping,
		gravityScale:   desc.GravityScale,
		restitution:    desc.Restitution,
		friction:       desc.Friction,
	}

	if desc.Kind == Dynamic {
		mass := desc.Mass
		if mass <= 0 {
			mass = desc.Collider.Volume()
		}
		b.invMass = 1 / mass
	} else {
		b.vel = mgl32.Vec3{}
	}
	return b
}

// aabb returns the world-space bounds of a bounded collider.
func (b *body) aabb() (mgl32.Vec3, mgl32.Vec3) {
	half := b.collider.extents()
	return b.pos.Sub(half), b.pos.Add(half)
}
