package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

const (
	castTolerance = 1e-4
	castMaxIters  = 64
)

// queryPad keeps flat query boxes from falling between grid cells.
var queryPad = mgl32.Vec3{0.01, 0.01, 0.01}

func sweptBox(origin, dir mgl32.Vec3, maxToi, radius float32) (mgl32.Vec3, mgl32.Vec3) {
	end := origin.Add(dir.Mul(maxToi))
	pad := queryPad.Add(mgl32.Vec3{radius, radius, radius})
	min := mgl32.Vec3{
		float32(math.Min(float64(origin[0]), float64(end[0]))),
		float32(math.Min(float64(origin[1]), float64(end[1]))),
		float32(math.Min(float64(origin[2]), float64(end[2]))),
	}
	max := mgl32.Vec3{
		float32(math.Max(float64(origin[0]), float64(end[0]))),
		float32(math.Max(float64(origin[1]), float64(end[1]))),
		float32(math.Max(float64(origin[2]), float64(end[2]))),
	}
	return min.Sub(pad), max.Add(pad)
}

func (b *body) castRay(origin, dir mgl32.Vec3, solid bool) (float32, mgl32.Vec3, bool) {
	switch b.collider.Kind {
	case ShapeBall:
		return rayBall(origin, dir, b.pos, b.collider.Radius, solid)
	case ShapeCuboid:
		min, max := b.aabb()
		return rayAABB(origin, dir, min, max, solid)
	case ShapeHalfSpace:
		return rayHalfSpace(origin, dir, b.pos, b.collider.Normal, solid)
	}
	return 0, mgl32.Vec3{}, false
}

// sweepBall casts a ball of radius r against b. A ball already touching b
// hits at toi 0.
func (b *body) sweepBall(origin, dir mgl32.Vec3, r, maxToi float32) (float32, mgl32.Vec3, bool) {
	switch b.collider.Kind {
	case ShapeBall:
		return rayBall(origin, dir, b.pos, b.collider.Radius+r, true)
	case ShapeHalfSpace:
		n := b.collider.Normal
		return rayHalfSpace(origin, dir, b.pos.Add(n.Mul(r)), n, true)
	case ShapeCuboid:
		min, max := b.aabb()
		t := float32(0)
		for i := 0; i < castMaxIters && t <= maxToi; i++ {
			p := origin.Add(dir.Mul(t))
			d := p.Sub(closestPointAABB(p, min, max))
			dist := d.Len()
			if dist-r <= castTolerance {
				if dist < epsilon {
					return t, closestFaceNormal(p, min, max), true
				}
				return t, d.Mul(1 / dist), true
			}
			t += dist - r
		}
	}
	return 0, mgl32.Vec3{}, false
}

// overlaps reports whether shape placed at pos strictly overlaps b.
func (b *body) overlaps(pos mgl32.Vec3, shape Collider) bool {
	switch shape.Kind {
	case ShapeBall:
		switch b.collider.Kind {
		case ShapeBall:
			return ballBallOverlap(pos, shape.Radius, b.pos, b.collider.Radius)
		case ShapeCuboid:
			min, max := b.aabb()
			return ballAABBOverlap(pos, shape.Radius, min, max)
		case ShapeHalfSpace:
			return ballHalfSpaceOverlap(pos, shape.Radius, b.pos, b.collider.Normal)
		}
	case ShapeCuboid:
		half := shape.HalfExtents
		switch b.collider.Kind {
		case ShapeBall:
			return ballAABBOverlap(b.pos, b.collider.Radius, pos.Sub(half), pos.Add(half))
		case ShapeCuboid:
			min, max := b.aabb()
			return aabbOverlap(pos.Sub(half), pos.Add(half), min, max)
		case ShapeHalfSpace:
			return aabbHalfSpaceOverlap(pos, half, b.pos, b.collider.Normal)
		}
	}
	return false
}

func (w *World) CastRay(origin, dir mgl32.Vec3, maxToi float32, solid bool, filter QueryFilter) (RayHit, bool) {
	if dir.LenSqr() < epsilon || maxToi < 0 {
		return RayHit{}, false
	}
	dir = dir.Normalize()

	best := RayHit{Toi: maxToi}
	found := false
	min, max := sweptBox(origin, dir, maxToi, 0)
	for _, b := range w.bp.candidates(min, max) {
		if !filter.accepts(b) {
			continue
		}
		toi, n, ok := b.castRay(origin, dir, solid)
		if !ok || toi > best.Toi || (found && toi == best.Toi) {
			continue
		}
		best = RayHit{Entity: b.entity, Toi: toi, Point: origin.Add(dir.Mul(toi)), Normal: n}
		found = true
	}
	return best, found
}

// CastShape supports ball shapes exactly. Cuboid shapes are cast as their
// bounding ball and rot is ignored since cuboids are axis-aligned.
func (w *World) CastShape(origin mgl32.Vec3, rot mgl32.Quat, dir mgl32.Vec3, shape Collider, maxToi float32, filter QueryFilter) (ShapeHit, bool) {
	if !shape.Bounded() || dir.LenSqr() < epsilon || maxToi < 0 {
		return ShapeHit{}, false
	}
	hit, _, ok := w.castBall(origin, dir.Normalize(), shape.BoundingRadius(), maxToi, filter)
	return hit, ok
}

func (w *World) castBall(origin, dir mgl32.Vec3, radius, maxToi float32, filter QueryFilter) (ShapeHit, *body, bool) {
	best := ShapeHit{Toi: maxToi}
	var hitBody *body
	min, max := sweptBox(origin, dir, maxToi, radius)
	for _, b := range w.bp.candidates(min, max) {
		if !filter.accepts(b) {
			continue
		}
		toi, n, ok := b.sweepBall(origin, dir, radius, maxToi)
		if !ok || toi > best.Toi || (hitBody != nil && toi == best.Toi) {
			continue
		}
		best = ShapeHit{Entity: b.entity, Toi: toi, Normal: n}
		hitBody = b
	}
	return best, hitBody, hitBody != nil
}

// IntersectionsWithShape ignores rot since cuboids are axis-aligned.
func (w *World) IntersectionsWithShape(pos mgl32.Vec3, rot mgl32.Quat, shape Collider, filter QueryFilter, fn func(e donburi.Entity) bool) {
	if !shape.Bounded() {
		return
	}
	half := shape.extents()
	for _, b := range w.bp.candidates(pos.Sub(half).Sub(queryPad), pos.Add(half).Add(queryPad)) {
		if !filter.accepts(b) || !b.overlaps(pos, shape) {
			continue
		}
		if !fn(b.entity) {
			return
		}
	}
}
