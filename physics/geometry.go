package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

var up = mgl32.Vec3{0, 1, 0}

func safeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < epsilon {
		return fallback
	}
	return v.Mul(1 / l)
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// rayBall intersects a ray (unit dir) with a ball. A solid ball reports a
// ray starting inside it at toi 0.
func rayBall(origin, dir, center mgl32.Vec3, radius float32, solid bool) (float32, mgl32.Vec3, bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius

	if c <= 0 {
		if solid {
			return 0, safeNormalize(m, up), true
		}
		t := -b + sqrt32(b*b-c)
		p := origin.Add(dir.Mul(t))
		return t, safeNormalize(p.Sub(center), up), true
	}

	// Outside and pointing away
	if b > 0 {
		return 0, mgl32.Vec3{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, mgl32.Vec3{}, false
	}
	t := -b - sqrt32(disc)
	if t < 0 {
		t = 0
	}
	p := origin.Add(dir.Mul(t))
	return t, safeNormalize(p.Sub(center), up), true
}

// rayAABB intersects a ray (unit dir) with an axis-aligned box using slabs.
func rayAABB(origin, dir, min, max mgl32.Vec3, solid bool) (float32, mgl32.Vec3, bool) {
	inside := pointInAABB(origin, min, max)
	if inside && solid {
		return 0, closestFaceNormal(origin, min, max), true
	}

	tmin := float32(0)
	tmax := float32(math.MaxFloat32)
	enterAxis, exitAxis := -1, -1

	for i := 0; i < 3; i++ {
		if abs32(dir[i]) < epsilon {
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (min[i] - origin[i]) * inv
		t2 := (max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis = i
		}
		if t2 < tmax {
			tmax = t2
			exitAxis = i
		}
		if tmin > tmax {
			return 0, mgl32.Vec3{}, false
		}
	}

	if inside {
		if exitAxis < 0 {
			return 0, mgl32.Vec3{}, false
		}
		var n mgl32.Vec3
		n[exitAxis] = sign32(dir[exitAxis])
		return tmax, n, true
	}
	if enterAxis < 0 {
		return 0, mgl32.Vec3{}, false
	}
	var n mgl32.Vec3
	n[enterAxis] = -sign32(dir[enterAxis])
	return tmin, n, true
}

// rayHalfSpace intersects a ray (unit dir) with the solid side of a plane.
func rayHalfSpace(origin, dir, point, normal mgl32.Vec3, solid bool) (float32, mgl32.Vec3, bool) {
	d := origin.Sub(point).Dot(normal)
	denom := dir.Dot(normal)

	if d <= 0 {
		if solid {
			return 0, normal, true
		}
		if denom <= epsilon {
			return 0, mgl32.Vec3{}, false
		}
		return -d / denom, normal, true
	}

	if denom >= -epsilon {
		return 0, mgl32.Vec3{}, false
	}
	return d / -denom, normal, true
}

func sign32(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

func pointInAABB(p, min, max mgl32.Vec3) bool {
	return p[0] >= min[0] && p[0] <= max[0] &&
		p[1] >= min[1] && p[1] <= max[1] &&
		p[2] >= min[2] && p[2] <= max[2]
}

func closestPointAABB(p, min, max mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		clamp32(p[0], min[0], max[0]),
		clamp32(p[1], min[1], max[1]),
		clamp32(p[2], min[2], max[2]),
	}
}

// closestFaceNormal is the outward normal of the box face nearest to an
// interior point.
func closestFaceNormal(p, min, max mgl32.Vec3) mgl32.Vec3 {
	n, _ := shallowestAxis(p, min, max)
	return n
}

// shallowestAxis returns the outward face normal and distance to the nearest
// face for a point inside the box.
func shallowestAxis(p, min, max mgl32.Vec3) (mgl32.Vec3, float32) {
	best := float32(math.MaxFloat32)
	var n mgl32.Vec3
	for i := 0; i < 3; i++ {
		if d := p[i] - min[i]; d < best {
			best = d
			n = mgl32.Vec3{}
			n[i] = -1
		}
		if d := max[i] - p[i]; d < best {
			best = d
			n = mgl32.Vec3{}
			n[i] = 1
		}
	}
	return n, best
}

func ballBallOverlap(a mgl32.Vec3, ra float32, b mgl32.Vec3, rb float32) bool {
	r := ra + rb
	return a.Sub(b).LenSqr() < r*r
}

func ballAABBOverlap(c mgl32.Vec3, r float32, min, max mgl32.Vec3) bool {
	q := closestPointAABB(c, min, max)
	return c.Sub(q).LenSqr() < r*r
}

func ballHalfSpaceOverlap(c mgl32.Vec3, r float32, point, normal mgl32.Vec3) bool {
	return c.Sub(point).Dot(normal) < r
}

func aabbOverlap(minA, maxA, minB, maxB mgl32.Vec3) bool {
	return minA[0] < maxB[0] && maxA[0] > minB[0] &&
		minA[1] < maxB[1] && maxA[1] > minB[1] &&
		minA[2] < maxB[2] && maxA[2] > minB[2]
}

func aabbHalfSpaceOverlap(center, half, point, normal mgl32.Vec3) bool {
	reach := abs32(normal[0])*half[0] + abs32(normal[1])*half[1] + abs32(normal[2])*half[2]
	return center.Sub(point).Dot(normal) < reach
}
