package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind identifies the geometry of a Collider.
type ShapeKind int

const (
	ShapeBall ShapeKind = iota
	ShapeCuboid
	ShapeHalfSpace
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBall:
		return "ball"
	case ShapeCuboid:
		return "cuboid"
	case ShapeHalfSpace:
		return "half-space"
	}
	return "unknown"
}

// Collider is the collision geometry attached to a body or used by a query.
// Cuboids are axis-aligned; body rotation never affects them.
type Collider struct {
	Kind        ShapeKind
	Radius      float32    // ShapeBall
	HalfExtents mgl32.Vec3 // ShapeCuboid
	Normal      mgl32.Vec3 // ShapeHalfSpace, unit length
}

// Ball returns a sphere collider.
func Ball(radius float32) Collider {
	return Collider{Kind: ShapeBall, Radius: radius}
}

// Cuboid returns an axis-aligned box collider from its half extents.
func Cuboid(hx, hy, hz float32) Collider {
	return Collider{Kind: ShapeCuboid, HalfExtents: mgl32.Vec3{hx, hy, hz}}
}

// HalfSpace returns an infinite plane through the body position. Everything
// behind the plane (opposite the normal) is solid.
func HalfSpace(normal mgl32.Vec3) Collider {
	return Collider{Kind: ShapeHalfSpace, Normal: safeNormalize(normal, up)}
}

// Bounded reports whether the collider has a finite extent.
func (c Collider) Bounded() bool {
	return c.Kind != ShapeHalfSpace
}

// BoundingRadius is the radius of the smallest ball centered on the body
// that contains the collider. Half-spaces are unbounded.
func (c Collider) BoundingRadius() float32 {
	switch c.Kind {
	case ShapeBall:
		return c.Radius
	case ShapeCuboid:
		return c.HalfExtents.Len()
	}
	return float32(math.Inf(1))
}

// extents returns the AABB half size of a bounded collider.
func (c Collider) extents() mgl32.Vec3 {
	if c.Kind == ShapeCuboid {
		return c.HalfExtents
	}
	return mgl32.Vec3{c.Radius, c.Radius, c.Radius}
}

// Volume is used to derive a default mass.
func (c Collider) Volume() float32 {
	switch c.Kind {
	case ShapeBall:
		return 4.0 / 3.0 * math.Pi * c.Radius * c.Radius * c.Radius
	case ShapeCuboid:
		return 8 * c.HalfExtents.X() * c.HalfExtents.Y() * c.HalfExtents.Z()
	}
	return 0
}
