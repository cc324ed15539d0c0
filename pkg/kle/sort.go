package kle

import (
	"math"
	"sort"
)

// Less reports whether key a precedes key b in reading order: rotation
// cluster first (normalized angle, then rotation origin), then top-to-bottom,
// left-to-right. Grouping by cluster keeps rotated islands contiguous, which
// both the serializer and downstream layout consumers rely on.
func Less(a, b *Key) bool {
	if an, bn := math.Mod(a.RotationAngle+360, 360), math.Mod(b.RotationAngle+360, 360); an != bn {
		return an < bn
	}
	if a.RotationX != b.RotationX {
		return a.RotationX < b.RotationX
	}
	if a.RotationY != b.RotationY {
		return a.RotationY < b.RotationY
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// SortKeys sorts keys into reading order, in place. The sort is stable so
// that keys sharing a position keep their original relative order.
func SortKeys(keys []*Key) {
	sort.SliceStable(keys, func(i, j int) bool { return Less(keys[i], keys[j]) })
}
