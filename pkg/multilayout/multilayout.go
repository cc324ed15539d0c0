package multilayout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/keebtools/keylayout/pkg/kle"
)

var (
	// ErrMalformedMultilayoutLabel is returned when a key's multilayout value
	// and index label slots are asymmetrically populated: one numeric, the
	// other missing or junk. Offsets cannot be computed from half a pair, so
	// this fails the whole request even for groups that are never selected.
	ErrMalformedMultilayoutLabel = errors.New("malformed multilayout label pair")

	// ErrMalformedMatrixLabel is returned when a key's matrix row and column
	// label slots are asymmetrically populated.
	ErrMalformedMatrixLabel = errors.New("malformed matrix label pair")

	// ErrSelectionArityMismatch is returned by [Resolve] when the selection
	// does not contain exactly one entry per multilayout group.
	ErrSelectionArityMismatch = errors.New("selection must contain exactly one entry per multilayout group")

	// ErrSelectionIndexOutOfRange is returned by [Resolve] when a selected
	// value index does not exist in its group.
	ErrSelectionIndexOutOfRange = errors.New("selected value index does not exist in its group")

	// ErrMissingDefaultOption is returned when a multilayout group has no
	// value-0 option. Value 0 is the geometric anchor every other option is
	// offset against; a group without it has no well-defined geometry.
	ErrMissingDefaultOption = errors.New("multilayout group has no value-0 option")
)

// Selection picks one option value per multilayout group. Entries address
// groups in ascending numeric group order: Selection[i] is the value chosen
// for the i-th group. Its length must equal the number of groups.
type Selection []int

// Offset is the translation that aligns one option's bounding box onto its
// group's value-0 option.
type Offset struct {
	DX, DY float64
}

// bucket holds the keys sharing one (group, value) pair. Keys are referenced
// by index into the owning keyboard's key slice; order is first-seen keyboard
// order. seen guards against the same key object appearing twice through an
// aliased key slice.
type bucket struct {
	value int
	keys  []int
	seen  map[*kle.Key]struct{}
}

func (b *bucket) add(idx int, k *kle.Key) {
	if _, dup := b.seen[k]; dup {
		return
	}
	b.seen[k] = struct{}{}
	b.keys = append(b.keys, idx)
}

// group is one multilayout group: an integer id plus its value buckets in
// first-seen order.
type group struct {
	id      int
	buckets []*bucket
}

// bucketFor returns the bucket holding the given option value, or nil.
func (g *group) bucketFor(value int) *bucket {
	for _, b := range g.buckets {
		if b.value == value {
			return b
		}
	}
	return nil
}

// winner picks the option value synthesized into the default layout: value 0
// when every option has the same key count, otherwise the first-encountered
// option achieving the maximum count.
func (g *group) winner() int {
	first := len(g.buckets[0].keys)
	maxLen, allEqual := 0, true
	for _, b := range g.buckets {
		if len(b.keys) != first {
			allEqual = false
		}
		if len(b.keys) > maxLen {
			maxLen = len(b.keys)
		}
	}
	if allEqual {
		return 0
	}
	for _, b := range g.buckets {
		if len(b.keys) == maxLen {
			return b.value
		}
	}
	return 0
}

// partition is the split of a keyboard's keys into plain keys and multilayout
// groups. All indices refer to the key slice the partition was built from;
// encoder-marker keys appear in neither half.
type partition struct {
	plain    []int
	groups   []*group    // ascending by group id
	memberOf map[int]int // key index -> group id, for grouped keys only
}

// findMultilayoutKeys returns the index set of keys carrying a multilayout
// label in either slot. Every qualifying key is validated eagerly, so a
// malformed pair fails the request even when its group is never selected.
func findMultilayoutKeys(keys []*kle.Key) (map[int]struct{}, error) {
	ml := make(map[int]struct{})
	for i, k := range keys {
		if k.Label(slotGroup) == "" && k.Label(slotValue) == "" {
			continue
		}
		if _, _, err := extractMultilayout(k); err != nil {
			return nil, err
		}
		ml[i] = struct{}{}
	}
	return ml, nil
}

// partitionKeys splits keys into plain keys and multilayout groups, dropping
// encoder-marker keys from both halves. Buckets preserve first-seen order;
// groups are finalized in ascending numeric order. The value-0 anchor
// invariant is enforced here so every later offset computation is safe.
func partitionKeys(keys []*kle.Key) (*partition, error) {
	ml, err := findMultilayoutKeys(keys)
	if err != nil {
		return nil, err
	}

	p := &partition{memberOf: make(map[int]int)}
	byID := make(map[int]*group)
	for i, k := range keys {
		if k.Label(slotMarker) == encoderMarker {
			// Encoder keys are electrical, never part of the physical layout.
			continue
		}
		if _, isML := ml[i]; !isML {
			p.plain = append(p.plain, i)
			continue
		}
		gid, val, _ := extractMultilayout(k) // validated above
		g := byID[gid]
		if g == nil {
			g = &group{id: gid}
			byID[gid] = g
			p.groups = append(p.groups, g)
		}
		b := g.bucketFor(val)
		if b == nil {
			b = &bucket{value: val, seen: make(map[*kle.Key]struct{})}
			g.buckets = append(g.buckets, b)
		}
		b.add(i, k)
		p.memberOf[i] = gid
	}

	sort.Slice(p.groups, func(i, j int) bool { return p.groups[i].id < p.groups[j].id })

	for _, g := range p.groups {
		if b := g.bucketFor(0); b == nil || len(b.keys) == 0 {
			return nil, fmt.Errorf("group %d: %w", g.id, ErrMissingDefaultOption)
		}
	}
	return p, nil
}

// validateSelection checks the selection against the partition: one entry per
// group, and every selected value must exist in its group. Both the count
// bound and the by-value lookup gate, so sparse value sets cannot slip a
// nonexistent value through.
func (p *partition) validateSelection(sel Selection) error {
	if len(sel) != len(p.groups) {
		return fmt.Errorf("selection has %d entries for %d groups: %w", len(sel), len(p.groups), ErrSelectionArityMismatch)
	}
	for gi, g := range p.groups {
		v := sel[gi]
		if v < 0 || v >= len(g.buckets) || g.bucketFor(v) == nil {
			return fmt.Errorf("selected index %d does not exist for group %d: %w", v, g.id, ErrSelectionIndexOutOfRange)
		}
	}
	return nil
}
