// Package multilayout resolves keyboards carrying multilayout key groups -
// mutually exclusive physical alternatives for one location, like a split
// versus full spacebar - into a single concrete, conflict-free key list.
//
// # Model
//
// Keys are annotated through KLE label slots: a numeric group id and option
// value pair marks a key as belonging to one (group, value) alternative.
// Value 0 is the group's geometric anchor; every other option is translated
// so its bounding-box min corner lands on the anchor's. Keys whose marker
// slot flags them as encoders are electrical only and drop out of physical
// resolution entirely.
//
// # Resolution
//
// [Resolve] applies an explicit per-group selection and mutates its input in
// place. [ResolveDefault] synthesizes a canonical layout with no selection,
// preferring the option with the most keys per group, and works on a private
// deep copy so the caller's keyboard is untouched. Both end by re-basing the
// result to a (0,0) origin and sorting it into reading order.
//
// ResolveDefault additionally rescues keys whose electrical matrix position
// exists only in a losing option, appending the first such key per missing
// coordinate unmodified - a deliberately limited recovery for split-key
// matrices.
//
// # Failure
//
// All validation failures are fatal for the request: asymmetric label pairs
// ([ErrMalformedMultilayoutLabel], [ErrMalformedMatrixLabel]), selections of
// the wrong length ([ErrSelectionArityMismatch]) or naming values that do not
// exist ([ErrSelectionIndexOutOfRange]), and groups lacking their value-0
// anchor ([ErrMissingDefaultOption]). Correct geometry cannot be inferred
// from malformed input, so nothing is recovered or defaulted.
//
// The package is pure in-memory transformation: no I/O, no goroutines, no
// context. Operations complete in time linear in the key count.
package multilayout
