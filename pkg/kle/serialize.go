package kle

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Serialize encodes a keyboard back into a KLE document. The output is
// canonical rather than minimal: label alignment is pinned to 0 so that every
// label slot stays addressable, and properties are emitted as deltas against
// the same state machine Parse runs. Parse(Serialize(kbd)) reproduces kbd
// exactly; keys are emitted in the order they appear on the keyboard.
func Serialize(kbd *Keyboard) ([]byte, error) {
	doc := make([]any, 0, len(kbd.Keys)+1)
	if kbd.Meta != (Meta{}) {
		doc = append(doc, kbd.Meta)
	}

	cur := *NewKey()
	clusterX, clusterY := 0.0, 0.0
	var row []any

	for i, k := range kbd.Keys {
		clusterChanged := k.RotationAngle != cur.RotationAngle ||
			k.RotationX != cur.RotationX || k.RotationY != cur.RotationY
		newRow := i == 0 || clusterChanged || k.Y != cur.Y

		if newRow && i > 0 {
			doc = append(doc, row)
			row = nil
			cur.Y++
			cur.X = cur.RotationX
		}

		props := map[string]any{}
		if i == 0 {
			// Pin alignment once; it persists for the whole document.
			props["a"] = 0
		}
		if clusterChanged {
			if k.RotationAngle != cur.RotationAngle {
				props["r"] = k.RotationAngle
				cur.RotationAngle = k.RotationAngle
			}
			if k.RotationX != cur.RotationX {
				props["rx"] = k.RotationX
				clusterX = k.RotationX
				cur.RotationX = k.RotationX
				cur.X, cur.Y = clusterX, clusterY
			}
			if k.RotationY != cur.RotationY {
				props["ry"] = k.RotationY
				clusterY = k.RotationY
				cur.RotationY = k.RotationY
				cur.X, cur.Y = clusterX, clusterY
			}
		}
		if dx := k.X - cur.X; dx != 0 {
			props["x"] = dx
			cur.X = k.X
		}
		if dy := k.Y - cur.Y; dy != 0 {
			props["y"] = dy
			cur.Y = k.Y
		}
		if k.Width != 1 {
			props["w"] = k.Width
		}
		if k.Height != 1 {
			props["h"] = k.Height
		}
		if k.X2 != 0 {
			props["x2"] = k.X2
		}
		if k.Y2 != 0 {
			props["y2"] = k.Y2
		}
		if k.Width2 != k.Width {
			props["w2"] = k.Width2
		}
		if k.Height2 != k.Height {
			props["h2"] = k.Height2
		}
		if k.Color != cur.Color {
			props["c"] = k.Color
			cur.Color = k.Color
		}
		if k.TextColor != cur.TextColor {
			props["t"] = k.TextColor
			cur.TextColor = k.TextColor
		}
		if k.Profile != cur.Profile {
			props["p"] = k.Profile
			cur.Profile = k.Profile
		}
		if k.TextSize != cur.TextSize {
			props["f"] = k.TextSize
			cur.TextSize = k.TextSize
		}
		if k.Ghost != cur.Ghost {
			props["g"] = k.Ghost
			cur.Ghost = k.Ghost
		}
		if k.Nub {
			props["n"] = true
		}
		if k.Stepped {
			props["l"] = true
		}
		if k.Decal {
			props["d"] = true
		}
		if len(props) > 0 {
			row = append(row, props)
		}
		row = append(row, labelString(k))

		cur.X = k.X + k.Width
	}
	if row != nil {
		doc = append(doc, row)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("kle: encode document: %w", err)
	}
	return out, nil
}

// labelString joins the canonical label slots into the serialized newline
// form for alignment 0, trimming trailing empties.
func labelString(k *Key) string {
	parts := make([]string, NumLabels)
	for pos := 0; pos < NumLabels; pos++ {
		parts[pos] = k.Label(labelMap[0][pos])
	}
	last := len(parts)
	for last > 0 && parts[last-1] == "" {
		last--
	}
	return strings.Join(parts[:last], "\n")
}
