package multilayout

import (
	"strconv"

	"github.com/keebtools/keylayout/pkg/kle"
)

// testKey builds a 1u key at (x, y) with the given label slots populated.
func testKey(x, y float64, slots map[int]string) *kle.Key {
	k := kle.NewKey()
	k.X, k.Y = x, y
	for i, s := range slots {
		k.Labels[i] = s
	}
	return k
}

// mlKey builds a key annotated with a multilayout (group, value) pair.
func mlKey(x, y float64, group, value int) *kle.Key {
	return testKey(x, y, map[int]string{
		slotGroup: strconv.Itoa(group),
		slotValue: strconv.Itoa(value),
	})
}

// withMatrix stamps a matrix (row, col) coordinate onto a key.
func withMatrix(k *kle.Key, row, col int) *kle.Key {
	k.Labels[slotRow] = strconv.Itoa(row)
	k.Labels[slotCol] = strconv.Itoa(col)
	return k
}

func board(keys ...*kle.Key) *kle.Keyboard {
	return &kle.Keyboard{Keys: keys}
}
