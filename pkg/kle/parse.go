package kle

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDocument indicates the input is not a JSON array of rows.
	ErrInvalidDocument = errors.New("kle: document must be a JSON array of rows")
	// ErrMisplacedMetadata indicates a metadata object anywhere but the first element.
	ErrMisplacedMetadata = errors.New("kle: metadata object must be the first element")
	// ErrRotationPlacement indicates r/rx/ry on anything but the first key of a row.
	ErrRotationPlacement = errors.New("kle: rotation properties are only valid at the start of a row")
	// ErrBadAlignment indicates a label alignment outside 0..7.
	ErrBadAlignment = errors.New("kle: label alignment must be between 0 and 7")
)

// labelMap translates serialized label positions to canonical label slots,
// one row per alignment flag value. -1 marks positions the alignment cannot
// express; text found there is dropped, matching keyboard-layout-editor
// itself.
var labelMap = [8][NumLabels]int{
	{0, 6, 2, 8, 9, 11, 3, 5, 1, 4, 7, 10},     // 0 = no centering
	{1, 7, -1, -1, 9, 11, 4, -1, 0, -1, -1, 10}, // 1 = center x
	{3, -1, 5, -1, 9, 11, -1, -1, 4, -1, -1, 10}, // 2 = center y
	{4, -1, -1, -1, 9, 11, -1, -1, -1, -1, -1, 10}, // 3 = center x & y
	{0, 6, 2, 8, 10, -1, 3, 5, 1, 4, 7, -1},     // 4 = center front
	{1, 7, -1, -1, 10, -1, 4, -1, 0, -1, -1, -1}, // 5 = center front & x
	{3, -1, 5, -1, 10, -1, -1, -1, 4, -1, -1, -1}, // 6 = center front & y
	{4, -1, -1, -1, 10, -1, -1, -1, -1, -1, -1, -1}, // 7 = center front & x & y
}

// rawProps mirrors a KLE property object. Pointers distinguish "absent" from
// zero. Unknown properties are ignored.
type rawProps struct {
	A  *int     `json:"a"`
	X  *float64 `json:"x"`
	Y  *float64 `json:"y"`
	W  *float64 `json:"w"`
	H  *float64 `json:"h"`
	X2 *float64 `json:"x2"`
	Y2 *float64 `json:"y2"`
	W2 *float64 `json:"w2"`
	H2 *float64 `json:"h2"`
	R  *float64 `json:"r"`
	RX *float64 `json:"rx"`
	RY *float64 `json:"ry"`
	C  *string  `json:"c"`
	T  *string  `json:"t"`
	P  *string  `json:"p"`
	F  *float64 `json:"f"`
	G  *bool    `json:"g"`
	D  *bool    `json:"d"`
	N  *bool    `json:"n"`
	L  *bool    `json:"l"`
}

// parser carries the persistent property state of the KLE row walk. cur holds
// the properties the next key will be stamped from; width/height and the
// one-shot flags reset after every key, everything else persists until
// overridden.
type parser struct {
	cur                Key
	align              int
	clusterX, clusterY float64
	w2set, h2set       bool
	keys               []*Key
}

// Parse decodes a raw KLE document into a Keyboard. The input is the JSON
// array produced by keyboard-layout-editor's "download" output, optionally
// led by a metadata object. Decoding is all-or-nothing: any structural
// problem fails the whole document.
func Parse(data []byte) (*Keyboard, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	kbd := &Keyboard{}
	p := &parser{cur: *NewKey(), align: 4}

	for ri, raw := range rows {
		trimmed := strings.TrimLeft(string(raw), " \t\r\n")
		if strings.HasPrefix(trimmed, "{") {
			if ri != 0 {
				return nil, fmt.Errorf("element %d: %w", ri, ErrMisplacedMetadata)
			}
			if err := json.Unmarshal(raw, &kbd.Meta); err != nil {
				return nil, fmt.Errorf("metadata: %w", err)
			}
			continue
		}

		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("row %d: %w", ri, ErrInvalidDocument)
		}
		keysInRow := 0
		for ii, item := range items {
			it := strings.TrimLeft(string(item), " \t\r\n")
			if strings.HasPrefix(it, "\"") {
				var label string
				if err := json.Unmarshal(item, &label); err != nil {
					return nil, fmt.Errorf("row %d item %d: %w", ri, ii, err)
				}
				p.emit(label)
				keysInRow++
				continue
			}
			var props rawProps
			if err := json.Unmarshal(item, &props); err != nil {
				return nil, fmt.Errorf("row %d item %d: %w", ri, ii, err)
			}
			if err := p.apply(&props, keysInRow); err != nil {
				return nil, fmt.Errorf("row %d item %d: %w", ri, ii, err)
			}
		}
		// Next row: one unit down, x rewinds to the rotation origin.
		p.cur.Y++
		p.cur.X = p.cur.RotationX
	}

	kbd.Keys = p.keys
	return kbd, nil
}

// apply folds a property object into the parser state. keysInRow guards the
// KLE rule that rotation may only change before the first key of a row.
func (p *parser) apply(props *rawProps, keysInRow int) error {
	if (props.R != nil || props.RX != nil || props.RY != nil) && keysInRow > 0 {
		return ErrRotationPlacement
	}
	if props.R != nil {
		p.cur.RotationAngle = *props.R
	}
	if props.RX != nil {
		p.clusterX = *props.RX
		p.cur.RotationX = *props.RX
		p.cur.X, p.cur.Y = p.clusterX, p.clusterY
	}
	if props.RY != nil {
		p.clusterY = *props.RY
		p.cur.RotationY = *props.RY
		p.cur.X, p.cur.Y = p.clusterX, p.clusterY
	}
	if props.A != nil {
		if *props.A < 0 || *props.A >= len(labelMap) {
			return fmt.Errorf("%w: got %d", ErrBadAlignment, *props.A)
		}
		p.align = *props.A
	}
	if props.X != nil {
		p.cur.X += *props.X
	}
	if props.Y != nil {
		p.cur.Y += *props.Y
	}
	if props.W != nil {
		p.cur.Width = *props.W
	}
	if props.H != nil {
		p.cur.Height = *props.H
	}
	if props.X2 != nil {
		p.cur.X2 = *props.X2
	}
	if props.Y2 != nil {
		p.cur.Y2 = *props.Y2
	}
	if props.W2 != nil {
		p.cur.Width2 = *props.W2
		p.w2set = true
	}
	if props.H2 != nil {
		p.cur.Height2 = *props.H2
		p.h2set = true
	}
	if props.C != nil {
		p.cur.Color = *props.C
	}
	if props.T != nil {
		// Per-label text colors are newline-separated; the first entry is
		// the key default, which is all this model keeps.
		p.cur.TextColor, _, _ = strings.Cut(*props.T, "\n")
	}
	if props.P != nil {
		p.cur.Profile = *props.P
	}
	if props.F != nil {
		p.cur.TextSize = *props.F
	}
	if props.G != nil {
		p.cur.Ghost = *props.G
	}
	if props.D != nil {
		p.cur.Decal = *props.D
	}
	if props.N != nil {
		p.cur.Nub = *props.N
	}
	if props.L != nil {
		p.cur.Stepped = *props.L
	}
	return nil
}

// emit stamps a key from the current state, then advances the cursor and
// resets the one-shot properties.
func (p *parser) emit(label string) {
	k := p.cur
	k.Labels = unalign(strings.Split(label, "\n"), p.align)
	if !p.w2set {
		k.Width2 = k.Width
	}
	if !p.h2set {
		k.Height2 = k.Height
	}
	p.keys = append(p.keys, &k)

	p.cur.X += p.cur.Width
	p.cur.Width, p.cur.Height = 1, 1
	p.cur.X2, p.cur.Y2, p.cur.Width2, p.cur.Height2 = 0, 0, 1, 1
	p.cur.Nub, p.cur.Stepped, p.cur.Decal = false, false, false
	p.w2set, p.h2set = false, false
}

// unalign maps serialized label positions back to canonical slots for the
// given alignment. Positions the alignment cannot express are dropped.
func unalign(parts []string, align int) []string {
	labels := make([]string, NumLabels)
	for i, s := range parts {
		if s == "" || i >= NumLabels {
			continue
		}
		if target := labelMap[align][i]; target >= 0 {
			labels[target] = s
		}
	}
	return labels
}
