package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/keebtools/keylayout/pkg/errors"
	"github.com/keebtools/keylayout/pkg/kle"
	"github.com/keebtools/keylayout/pkg/multilayout"
)

// VariantSpec names alternate layouts of one board, each with its per-group
// selection. The TOML form is a single table of name → selection:
//
//	[layouts]
//	ansi     = [0, 0]
//	iso      = [1, 0]
//	split_bs = [0, 1]
type VariantSpec struct {
	Layouts map[string][]int `toml:"layouts"`
}

// ParseVariantSpec decodes a TOML variant spec. A spec that defines no
// layouts is rejected: an empty spec is always a mistake, not a request for
// nothing.
func ParseVariantSpec(data []byte) (*VariantSpec, error) {
	var spec VariantSpec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode variant spec")
	}
	if len(spec.Layouts) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "variant spec defines no layouts")
	}
	return &spec, nil
}

// ResolveVariants decodes one KLE document and resolves every named variant
// in the spec against it. Each variant works on its own deep copy, so
// selections never compound and the decoded source stays pristine across
// variants. Variants are resolved in name order; the first failure aborts
// the whole call.
func (r *Runner) ResolveVariants(ctx context.Context, data []byte, spec *VariantSpec, opts Options) (map[string][]*kle.Key, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(&opts)

	kbd, err := r.decode(data, &opts)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(spec.Layouts))
	for name := range spec.Layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string][]*kle.Key, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		keys, err := multilayout.Resolve(kbd.Clone(), spec.Layouts[name])
		if err != nil {
			return nil, errors.Wrap(codeFor(err), err, "resolve variant %q", name)
		}
		out[name] = keys
		logger.Info("resolved variant",
			"name", name,
			"keys", len(keys),
			"duration", time.Since(start))
	}
	return out, nil
}
