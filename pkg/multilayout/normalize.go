package multilayout

import (
	"math"

	"github.com/keebtools/keylayout/pkg/kle"
)

// normalize re-bases keys to a (0,0)-origin bounding box and sorts them into
// reading order with the comparator the kle package supplies. Rotation
// origins are left alone: normalization repositions the whole layout, it does
// not re-anchor shapes. No-op on an empty key list.
func normalize(keys []*kle.Key) {
	if len(keys) == 0 {
		return
	}
	dx, dy := math.Inf(1), math.Inf(1)
	for _, k := range keys {
		dx = math.Min(dx, k.X)
		dy = math.Min(dy, k.Y)
	}
	for _, k := range keys {
		k.X -= dx
		k.Y -= dy
	}
	kle.SortKeys(keys)
}
