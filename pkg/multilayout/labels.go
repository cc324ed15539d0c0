package multilayout

import (
	"fmt"
	"strconv"

	"github.com/keebtools/keylayout/pkg/kle"
)

// Label slot assignments used by multilayout-annotated KLE sources. The slot
// historically named the multilayout "value" carries the group id and the
// "index" slot the option value within that group; error messages keep the
// historical names so they line up with existing board sources.
const (
	slotLegend = 0  // display legend
	slotGroup  = 3  // multilayout value slot: group id
	slotMarker = 4  // marker slot: "e" flags encoder keys
	slotValue  = 5  // multilayout index slot: option value
	slotRow    = 9  // matrix row
	slotCol    = 11 // matrix column
)

// encoderMarker in slotMarker excludes a key from physical-layout resolution.
const encoderMarker = "e"

// isNumeric reports whether s is a non-empty run of decimal digits. Signs,
// decimal points, and empty strings all disqualify a slot.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// extractMultilayout decodes a key's (group, value) pair from its multilayout
// label slots. Both slots must be numeric; an asymmetric pair is rejected
// before it can corrupt offset math, and a key expected to be multilayout
// with neither slot numeric is rejected the same way.
func extractMultilayout(k *kle.Key) (group, value int, err error) {
	groupLbl := k.Label(slotGroup)
	valueLbl := k.Label(slotValue)

	switch {
	case isNumeric(groupLbl) && isNumeric(valueLbl):
	case isNumeric(groupLbl):
		return 0, 0, fmt.Errorf("key at (%v, %v) has a multilayout value of %s but is missing a valid multilayout index: %w",
			k.X, k.Y, groupLbl, ErrMalformedMultilayoutLabel)
	case isNumeric(valueLbl):
		return 0, 0, fmt.Errorf("key at (%v, %v) has a multilayout index of %s but is missing a valid multilayout value: %w",
			k.X, k.Y, valueLbl, ErrMalformedMultilayoutLabel)
	default:
		return 0, 0, fmt.Errorf("key at (%v, %v) is missing a valid multilayout value and index label: %w",
			k.X, k.Y, ErrMalformedMultilayoutLabel)
	}

	group, _ = strconv.Atoi(groupLbl)
	value, _ = strconv.Atoi(valueLbl)
	return group, value, nil
}

// MatrixCoord decodes the electrical matrix position from a key's row and
// column label slots. Both slots must be numeric: a key carrying only half a
// coordinate returns ErrMalformedMatrixLabel. The matrix position identifies
// a key electrically, independent of which multilayout option it belongs to.
func MatrixCoord(k *kle.Key) (row, col int, err error) {
	rowLbl := k.Label(slotRow)
	colLbl := k.Label(slotCol)

	switch {
	case isNumeric(rowLbl) && isNumeric(colLbl):
	case isNumeric(rowLbl):
		return 0, 0, fmt.Errorf("key at (%v, %v) has a row value of %s but is missing a valid column label: %w",
			k.X, k.Y, rowLbl, ErrMalformedMatrixLabel)
	case isNumeric(colLbl):
		return 0, 0, fmt.Errorf("key at (%v, %v) has a column value of %s but is missing a valid row label: %w",
			k.X, k.Y, colLbl, ErrMalformedMatrixLabel)
	default:
		return 0, 0, fmt.Errorf("key at (%v, %v) is missing a valid row and column label: %w",
			k.X, k.Y, ErrMalformedMatrixLabel)
	}

	row, _ = strconv.Atoi(rowLbl)
	col, _ = strconv.Atoi(colLbl)
	return row, col, nil
}
