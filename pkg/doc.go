// Package pkg provides the core libraries for keylayout, a resolver for
// multilayout keyboard documents.
//
// # Overview
//
// Community keyboard layouts are drawn in keyboard-layout-editor (KLE) with
// every physical option of the board on the canvas at once: full and split
// backspace, ANSI and ISO enter, every bottom row. Label slots carry the
// machine-readable annotations that tie the options together. keylayout
// decodes those documents, resolves one concrete physical layout from them,
// and emits the result in downstream-friendly formats.
//
// The pkg directory is organized into four areas:
//
//  1. [kle] - KLE document model: decoding, encoding, validation, ordering
//  2. [multilayout] - Layout resolution: grouping, selection, synthesis
//  3. [qmk] - QMK info.json layout projection
//  4. [pipeline] - Orchestration (decode → resolve → emit)
//
// plus the supporting [errors], [observability] and [buildinfo] packages.
//
// # Quick Start
//
// Resolve a layout and emit QMK records:
//
//	import (
//	    "context"
//	    "github.com/keebtools/keylayout/pkg/multilayout"
//	    "github.com/keebtools/keylayout/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(context.Background(), rawKLE, pipeline.Options{
//	    Selection: multilayout.Selection{0, 1},
//	    Formats:   []string{pipeline.FormatQMK},
//	})
//
// Leave the selection nil to synthesize the board's canonical default layout
// instead.
//
// # Main Packages
//
// [kle] - The KLE serial format: a JSON array of rows walked by a property
// state machine. Parse and Serialize are exact inverses over the canonical
// form; ValidateDocument checks raw documents against an embedded JSON
// Schema first.
//
// [multilayout] - The resolution core. Keys annotated with a (group, value)
// label pair form option buckets; Resolve applies an explicit per-group
// selection and ResolveDefault synthesizes a maximum-coverage default,
// rescuing unmatched matrix positions from losing options.
//
// [qmk] - Pure projection of resolved key lists into QMK info.json layout
// entries.
//
// [pipeline] - The decode → resolve → emit flow shared by all embedders,
// including TOML variant specs for resolving several named layouts of one
// board in a single pass.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/multilayout  # Specific package
//	go test -run Example       # Examples only
//
// [kle]: https://pkg.go.dev/github.com/keebtools/keylayout/pkg/kle
// [multilayout]: https://pkg.go.dev/github.com/keebtools/keylayout/pkg/multilayout
// [qmk]: https://pkg.go.dev/github.com/keebtools/keylayout/pkg/qmk
// [pipeline]: https://pkg.go.dev/github.com/keebtools/keylayout/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/keebtools/keylayout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/keebtools/keylayout/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/keebtools/keylayout/pkg/buildinfo
package pkg
