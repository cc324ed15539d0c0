// Package kle models the keyboard-layout-editor (KLE) serial format: an
// ordered key collection with positions, sizes, rotation clusters, and twelve
// label slots per key.
//
// # Decoding and encoding
//
// [Parse] decodes the JSON array format KLE produces, running the standard
// row state machine: property objects mutate a persistent cursor, strings
// stamp keys from it, and label text is remapped from the document's
// alignment into canonical slots. [Serialize] is its inverse; it emits a
// canonical document (alignment pinned to 0) such that Parse ∘ Serialize is
// the identity over this model.
//
// [ValidateDocument] checks raw bytes against an embedded JSON Schema and is
// intended to run before Parse at trust boundaries.
//
// # Label slots
//
// Converters repurpose canonical label slots for machine-readable data:
// slot 0 carries the display legend, slots 3 and 5 the multilayout group and
// value, slot 4 an encoder marker, and slots 9 and 11 the electrical matrix
// row and column. This package treats labels as opaque strings; the
// multilayout package owns the slot semantics.
//
// # Ordering
//
// [SortKeys] provides the reading-order comparator (rotation cluster, then
// y, then x) that layout normalization and serialization both consume.
package kle
