package physics

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
)

const (
	tagBody  = "body"
	tagProbe = "probe"
)

// resolv places an object in the cells from X to X+W-1. Widening every rect
// by cellPad makes the far edge land on X+W, so colliders narrower than a
// unit still reach the cell past a boundary.
const cellPad = 1

// broadphase buckets bounded colliders into a resolv grid over the XZ plane.
// Half-spaces and anything outside the grid are always candidates.
type broadphase struct {
	space  *resolv.Space
	bounds float64

	unbounded map[*body]struct{}
}

func newBroadphase(bounds float32, cellSize int) *broadphase {
	size := int(2 * bounds)
	return &broadphase{
		space:     resolv.NewSpace(size, size, cellSize, cellSize),
		bounds:    float64(bounds),
		unbounded: map[*body]struct{}{},
	}
}

func (bp *broadphase) insideGrid(min, max mgl32.Vec3) bool {
	return float64(min[0]) >= -bp.bounds && float64(max[0]) <= bp.bounds &&
		float64(min[2]) >= -bp.bounds && float64(max[2]) <= bp.bounds
}

func (bp *broadphase) rect(min, max mgl32.Vec3) (x, y, w, h float64) {
	x = float64(min[0]) + bp.bounds
	y = float64(min[2]) + bp.bounds
	w = float64(max[0]-min[0]) + cellPad
	h = float64(max[2]-min[2]) + cellPad
	return
}

func (bp *broadphase) insert(b *body) {
	if !b.collider.Bounded() {
		bp.unbounded[b] = struct{}{}
		return
	}
	min, max := b.aabb()
	x, y, w, h := bp.rect(min, max)
	obj := resolv.NewObject(x, y, w, h, tagBody)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = b
	b.proxy = obj
	bp.sync(b)
}

func (bp *broadphase) remove(b *body) {
	delete(bp.unbounded, b)
	if b.proxy != nil {
		if b.gridded {
			bp.space.Remove(b.proxy)
			b.gridded = false
		}
		b.proxy = nil
	}
}

// sync moves a body proxy after its position changed.
func (bp *broadphase) sync(b *body) {
	if b.proxy == nil {
		return
	}
	min, max := b.aabb()
	if !bp.insideGrid(min, max) {
		if b.gridded {
			bp.space.Remove(b.proxy)
			b.gridded = false
		}
		bp.unbounded[b] = struct{}{}
		return
	}
	delete(bp.unbounded, b)
	x, y, _, _ := bp.rect(min, max)
	b.proxy.X = x
	b.proxy.Y = y
	if !b.gridded {
		bp.space.Add(b.proxy)
		b.gridded = true
	}
	b.proxy.Update()
}

// candidates returns every body whose bounds may touch the box, sorted by
// spawn order.
func (bp *broadphase) candidates(min, max mgl32.Vec3) []*body {
	seen := map[*body]struct{}{}
	var out []*body

	for b := range bp.unbounded {
		seen[b] = struct{}{}
		out = append(out, b)
	}

	if bp.insideGrid(min, max) {
		x, y, w, h := bp.rect(min, max)
		probe := resolv.NewObject(x, y, w, h, tagProbe)
		bp.space.Add(probe)
		if check := probe.Check(0, 0, tagBody); check != nil {
			for _, obj := range check.ObjectsByTags(tagBody) {
				if b, ok := obj.Data.(*body); ok {
					if _, dup := seen[b]; !dup {
						seen[b] = struct{}{}
						out = append(out, b)
					}
				}
			}
		}
		bp.space.Remove(probe)
	} else {
		for _, obj := range bp.space.Objects() {
			if b, ok := obj.Data.(*body); ok {
				if _, dup := seen[b]; !dup {
					seen[b] = struct{}{}
					out = append(out, b)
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}
