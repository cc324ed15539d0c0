package kle

import "slices"

// NumLabels is the number of label slots on a key. KLE lays legends out on a
// 4x3 grid, serialized as twelve newline-separated positions. Converters
// repurpose specific slots for machine-readable annotations (matrix position,
// multilayout group and value, encoder markers).
const NumLabels = 12

// Default visual properties applied to keys that do not override them.
const (
	DefaultColor     = "#cccccc"
	DefaultTextColor = "#000000"
	DefaultTextSize  = 3
)

// Meta holds the keyboard-level metadata carried as the optional first
// element of a KLE document.
type Meta struct {
	Name      string `json:"name,omitempty"`
	Author    string `json:"author,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Backcolor string `json:"backcolor,omitempty"`
}

// Key is one physical key instance. Positions and sizes are in key units
// (1u = one standard keycap). The zero value is not usable - construct keys
// with NewKey or by decoding a document with Parse.
//
// Keys are plain mutable data: layout resolution shifts X/Y (and the rotation
// origin) in place. Code that needs an untouched source must Clone first.
type Key struct {
	X, Y          float64
	Width, Height float64

	// Secondary rectangle for non-rectangular keys (ISO enter, big-ass
	// enter). X2/Y2 are offsets relative to X/Y; Width2/Height2 equal
	// Width/Height when no secondary rectangle is present.
	X2, Y2, Width2, Height2 float64

	// Rotation in degrees around the (RotationX, RotationY) origin, which is
	// expressed in the same coordinate frame as X/Y.
	RotationAngle, RotationX, RotationY float64

	// Labels always has NumLabels entries, "" where a slot is empty.
	Labels []string

	Color     string
	TextColor string
	TextSize  float64
	Profile   string

	Ghost   bool
	Stepped bool
	Nub     bool
	Decal   bool // non-functional filler (blockers, logos)
}

// NewKey returns a key with KLE defaults: 1u x 1u at the origin, no
// rotation, empty labels, standard colors.
func NewKey() *Key {
	return &Key{
		Width:     1,
		Height:    1,
		Width2:    1,
		Height2:   1,
		Labels:    make([]string, NumLabels),
		Color:     DefaultColor,
		TextColor: DefaultTextColor,
		TextSize:  DefaultTextSize,
	}
}

// Label returns the label in slot i, or "" when the slot is empty or out of
// range. Callers should prefer this over indexing Labels directly so that
// hand-built keys with short label slices behave like decoded ones.
func (k *Key) Label(i int) string {
	if i < 0 || i >= len(k.Labels) {
		return ""
	}
	return k.Labels[i]
}

// Clone returns a deep copy of the key.
func (k *Key) Clone() *Key {
	c := *k
	c.Labels = slices.Clone(k.Labels)
	return &c
}

// Keyboard owns an ordered key collection plus document metadata.
type Keyboard struct {
	Meta Meta
	Keys []*Key
}

// Clone returns a deep copy of the keyboard. The copy shares nothing with the
// original, so transforms on one are never observable through the other.
func (kbd *Keyboard) Clone() *Keyboard {
	c := &Keyboard{Meta: kbd.Meta, Keys: make([]*Key, len(kbd.Keys))}
	for i, k := range kbd.Keys {
		c.Keys[i] = k.Clone()
	}
	return c
}
