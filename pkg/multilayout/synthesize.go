package multilayout

import "github.com/keebtools/keylayout/pkg/kle"

// ResolveDefault synthesizes one canonical layout with no external selection,
// picking for every group the option with the most keys (value 0 when all
// options are the same size). It is used to produce a single reference layout
// for matrix and footprint metadata.
//
// ResolveDefault operates on a deep copy and returns a new keyboard whose key
// list is the synthesized layout; the caller's keyboard is never modified.
func ResolveDefault(kbd *kle.Keyboard) (*kle.Keyboard, error) {
	clone := kbd.Clone()
	p, err := partitionKeys(clone.Keys)
	if err != nil {
		return nil, err
	}

	eng := newOffsetEngine(clone.Keys)
	out := make([]*kle.Key, 0, len(clone.Keys))
	for _, i := range p.plain {
		out = append(out, clone.Keys[i])
	}

	winners := make(map[int]int, len(p.groups))
	for _, g := range p.groups {
		v := g.winner()
		winners[g.id] = v
		b := g.bucketFor(v)
		if v == 0 {
			for _, ki := range b.keys {
				out = append(out, clone.Keys[ki])
			}
			continue
		}
		off := eng.offsetFor(g, v)
		for _, ki := range b.keys {
			applyOffset(clone.Keys[ki], off)
			out = append(out, clone.Keys[ki])
		}
	}

	if err := reconcile(clone.Keys, p, winners, &out); err != nil {
		return nil, err
	}

	normalize(out)
	clone.Keys = out
	return clone, nil
}

// reconcile recovers keys whose matrix position exists only in a losing
// option. A split-spacebar option, say, can win on key count while the full
// spacebar's matrix position appears nowhere in it; that key must survive or
// the synthesized layout loses an electrical position. Surviving keys are
// appended unmodified, with no offset.
//
// Only the first key encountered per missing coordinate is kept. Boards with
// more complex asymmetric split-key matrices may not be fully reconciled;
// this limitation is deliberate and must not be silently generalized.
func reconcile(keys []*kle.Key, p *partition, winners map[int]int, out *[]*kle.Key) error {
	// Matrix coordinates present in each group's winning option, hashed so
	// the scan below stays linear.
	coords := make(map[int]map[[2]int]struct{}, len(p.groups))
	for _, g := range p.groups {
		set := make(map[[2]int]struct{})
		for _, ki := range g.bucketFor(winners[g.id]).keys {
			row, col, err := MatrixCoord(keys[ki])
			if err != nil {
				return err
			}
			set[[2]int{row, col}] = struct{}{}
		}
		coords[g.id] = set
	}

	for i, k := range keys {
		gid, grouped := p.memberOf[i]
		if !grouped {
			continue
		}
		row, col, err := MatrixCoord(k)
		if err != nil {
			return err
		}
		c := [2]int{row, col}
		if _, present := coords[gid][c]; present {
			continue
		}
		coords[gid][c] = struct{}{}
		*out = append(*out, k)
	}
	return nil
}
