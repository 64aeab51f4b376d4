package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Approach speeds below this never bounce.
const restitutionThreshold = 1.0

type contact struct {
	normal mgl32.Vec3 // from other toward the dynamic ball
	depth  float32
}

// ballContact computes the penetration of a ball against another collider.
func ballContact(center mgl32.Vec3, radius float32, other *body) (contact, bool) {
	switch other.collider.Kind {
	case ShapeBall:
		d := center.Sub(other.pos)
		r := radius + other.collider.Radius
		dist := d.Len()
		if dist >= r {
			return contact{}, false
		}
		return contact{normal: safeNormalize(d, up), depth: r - dist}, true

	case ShapeCuboid:
		min, max := other.aabb()
		q := closestPointAABB(center, min, max)
		d := center.Sub(q)
		dist := d.Len()
		if dist >= radius {
			return contact{}, false
		}
		if dist < epsilon {
			n, face := shallowestAxis(center, min, max)
			return contact{normal: n, depth: radius + face}, true
		}
		return contact{normal: d.Mul(1 / dist), depth: radius - dist}, true

	case ShapeHalfSpace:
		n := other.collider.Normal
		s := center.Sub(other.pos).Dot(n)
		if s >= radius {
			return contact{}, false
		}
		return contact{normal: n, depth: radius - s}, true
	}
	return contact{}, false
}

func (w *World) resolveContacts() {
	for _, b := range w.bodies {
		if b.kind != Dynamic || b.sensor {
			continue
		}
		r := b.collider.Radius
		min := b.pos.Sub(mgl32.Vec3{r, r, r})
		max := b.pos.Add(mgl32.Vec3{r, r, r})

		for _, other := range w.bp.candidates(min, max) {
			if other == b || other.sensor {
				continue
			}
			// Dynamic pairs are handled once, from the older body.
			if other.kind == Dynamic && other.seq < b.seq {
				continue
			}
			c, ok := ballContact(b.pos, r, other)
			if !ok {
				continue
			}
			if other.kind == Dynamic {
				separateDynamic(b, other, c)
				w.bp.sync(other)
			} else {
				b.pos = b.pos.Add(c.normal.Mul(c.depth))
				respondFixed(b, other, c.normal)
			}
		}
		w.bp.sync(b)
	}
}

func combinedRestitution(a, b *body, approach float32) float32 {
	if approach < restitutionThreshold {
		return 0
	}
	return (a.restitution + b.restitution) / 2
}

// respondFixed removes the velocity of b going into the surface with normal
// n, bouncing and applying Coulomb friction.
func respondFixed(b, other *body, n mgl32.Vec3) {
	vn := b.vel.Dot(n)
	if vn >= 0 {
		return
	}
	e := combinedRestitution(b, other, -vn)
	impulse := -(1 + e) * vn
	b.vel = b.vel.Add(n.Mul(impulse))

	tangent := b.vel.Sub(n.Mul(b.vel.Dot(n)))
	if speed := tangent.Len(); speed > epsilon {
		mu := (b.friction + other.friction) / 2
		drop := mu * impulse
		if drop > speed {
			drop = speed
		}
		tangent = tangent.Mul((speed - drop) / speed)
		b.vel = n.Mul(b.vel.Dot(n)).Add(tangent)
	}

	if !b.lockRot && b.collider.Kind == ShapeBall {
		b.angVel = n.Cross(tangent).Mul(1 / b.collider.Radius)
	}
}

// separateDynamic pushes two overlapping balls apart in proportion to their
// inverse masses and exchanges the normal impulse.
func separateDynamic(a, b *body, c contact) {
	total := a.invMass + b.invMass
	if total <= 0 {
		return
	}
	a.pos = a.pos.Add(c.normal.Mul(c.depth * a.invMass / total))
	b.pos = b.pos.Sub(c.normal.Mul(c.depth * b.invMass / total))

	vn := a.vel.Sub(b.vel).Dot(c.normal)
	if vn >= 0 {
		return
	}
	e := combinedRestitution(a, b, -vn)
	j := -(1 + e) * vn / total
	a.vel = a.vel.Add(c.normal.Mul(j * a.invMass))
	b.vel = b.vel.Sub(c.normal.Mul(j * b.invMass))
}
