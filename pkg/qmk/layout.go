// Package qmk derives QMK info.json-style layout records from resolved key
// lists. It is a pure projection: one record per non-decal key, carrying only
// the fields QMK cares about, with KLE-isms (colors, profiles, rotation)
// dropped.
package qmk

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/keebtools/keylayout/pkg/kle"
	"github.com/keebtools/keylayout/pkg/multilayout"
)

// Number is a coordinate or size that marshals as a bare integer when it is
// exactly integral and as the original rational value otherwise, matching the
// layout files QMK ships ("x": 2, "x": 2.25).
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if f == math.Trunc(f) {
		return strconv.AppendInt(nil, int64(f), 10), nil
	}
	return json.Marshal(f)
}

// LayoutKey is one entry of a layout array. Width and height are omitted at
// the default 1u; the matrix position is present only when the source key
// carried a complete numeric coordinate pair.
type LayoutKey struct {
	Label  string  `json:"label,omitempty"`
	X      Number  `json:"x"`
	Y      Number  `json:"y"`
	W      *Number `json:"w,omitempty"`
	H      *Number `json:"h,omitempty"`
	Matrix []int   `json:"matrix,omitempty"`
}

// FromKeys derives layout records from a resolved key list. Decal keys
// (blockers, logos) are skipped; keys with a half-populated matrix pair get
// no matrix entry rather than an error, since the record list is metadata and
// the resolution path has already validated everything it depends on.
func FromKeys(keys []*kle.Key) []LayoutKey {
	out := make([]LayoutKey, 0, len(keys))
	for _, k := range keys {
		if k.Decal {
			continue
		}
		entry := LayoutKey{
			Label: k.Label(0),
			X:     Number(k.X),
			Y:     Number(k.Y),
		}
		if k.Width != 1 {
			w := Number(k.Width)
			entry.W = &w
		}
		if k.Height != 1 {
			h := Number(k.Height)
			entry.H = &h
		}
		if row, col, err := multilayout.MatrixCoord(k); err == nil {
			entry.Matrix = []int{row, col}
		}
		out = append(out, entry)
	}
	return out
}
