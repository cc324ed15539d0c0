package multilayout

import (
	"math"

	"github.com/keebtools/keylayout/pkg/kle"
)

type offsetKey struct {
	group, value int
}

// offsetEngine computes and memoizes per-(group, value) translations for one
// resolution pass. The cache is its own map, deliberately separate from the
// value buckets it is derived from. Offsets are never computed for value 0:
// that option already sits at the group's anchor position.
type offsetEngine struct {
	arena   []*kle.Key
	offsets map[offsetKey]Offset
}

func newOffsetEngine(arena []*kle.Key) *offsetEngine {
	return &offsetEngine{arena: arena, offsets: make(map[offsetKey]Offset)}
}

// offsetFor returns the translation aligning the given option's bounding-box
// min corner onto the group's value-0 min corner. value must be > 0 and
// present in the group. The first call computes; later calls return the
// cached result even if the underlying keys have since moved.
func (e *offsetEngine) offsetFor(g *group, value int) Offset {
	ck := offsetKey{g.id, value}
	if off, ok := e.offsets[ck]; ok {
		return off
	}
	xmin, ymin := e.minCorner(g.bucketFor(0))
	x, y := e.minCorner(g.bucketFor(value))
	off := Offset{DX: xmin - x, DY: ymin - y}
	e.offsets[ck] = off
	return off
}

// minCorner returns the componentwise minimum x and y over a bucket's keys.
func (e *offsetEngine) minCorner(b *bucket) (x, y float64) {
	x, y = math.Inf(1), math.Inf(1)
	for _, i := range b.keys {
		x = math.Min(x, e.arena[i].X)
		y = math.Min(y, e.arena[i].Y)
	}
	return x, y
}

// applyOffset translates a key in place. For rotated keys the rotation
// origin moves by the negative of the offset: the center is defined in the
// pre-shift frame and must stay anchored to the key shape rather than follow
// its new position.
func applyOffset(k *kle.Key, off Offset) {
	k.X += off.DX
	k.Y += off.DY
	if k.RotationAngle != 0 {
		k.RotationX -= off.DX
		k.RotationY -= off.DY
	}
}
