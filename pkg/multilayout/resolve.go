package multilayout

import "github.com/keebtools/keylayout/pkg/kle"

// Resolve produces one concrete layout from an explicit per-group selection:
// plain keys plus, for every group, the keys of the selected option, with
// non-default options translated onto the group's anchor position. The result
// is normalized to a (0,0)-origin bounding box in reading order.
//
// Resolve mutates the keyboard's keys in place; callers that need an
// untouched source must work on a [kle.Keyboard.Clone]. Compare
// [ResolveDefault], which never modifies its input.
func Resolve(kbd *kle.Keyboard, sel Selection) ([]*kle.Key, error) {
	p, err := partitionKeys(kbd.Keys)
	if err != nil {
		return nil, err
	}
	if err := p.validateSelection(sel); err != nil {
		return nil, err
	}

	eng := newOffsetEngine(kbd.Keys)
	out := make([]*kle.Key, 0, len(kbd.Keys))
	for _, i := range p.plain {
		out = append(out, kbd.Keys[i])
	}
	for gi, g := range p.groups {
		v := sel[gi]
		b := g.bucketFor(v)
		if v == 0 {
			// The default option already sits at the anchor position.
			for _, ki := range b.keys {
				out = append(out, kbd.Keys[ki])
			}
			continue
		}
		off := eng.offsetFor(g, v)
		for _, ki := range b.keys {
			applyOffset(kbd.Keys[ki], off)
			out = append(out, kbd.Keys[ki])
		}
	}

	normalize(out)
	return out, nil
}
