// Package pipeline provides the decode → resolve → emit pipeline for
// keylayout.
//
// This package implements the complete flow from raw KLE bytes to resolved
// layout artifacts, so every embedder gets identical behavior: schema
// validation, decoding, multilayout resolution (explicit selection or default
// synthesis), and artifact emission.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Selection: []int{0, 1},
//	    Formats:   []string{pipeline.FormatQMK},
//	}
//	result, err := runner.Execute(ctx, rawKLE, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout := result.Artifacts[pipeline.FormatQMK]
//
// Leave Options.Selection nil to synthesize the canonical default layout
// instead of applying an explicit per-group selection.
package pipeline

import (
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/keebtools/keylayout/pkg/errors"
	"github.com/keebtools/keylayout/pkg/kle"
	"github.com/keebtools/keylayout/pkg/multilayout"
)

// Output artifact formats.
const (
	// FormatKLE is the resolved layout re-encoded as a KLE document.
	FormatKLE = "kle"
	// FormatQMK is the resolved layout as a QMK info.json layout array.
	FormatQMK = "qmk"
)

// DefaultFormats is used when Options.Formats is empty.
var DefaultFormats = []string{FormatQMK}

// Options control one pipeline execution.
type Options struct {
	// Selection picks one option value per multilayout group, addressed in
	// ascending group order. Nil synthesizes the default layout instead; an
	// empty non-nil selection is an explicit selection for a board with no
	// groups.
	Selection multilayout.Selection

	// Formats are the artifacts to emit. Defaults to DefaultFormats.
	Formats []string

	// SkipValidation bypasses JSON Schema validation of the input document.
	// Decoding still fails on structural problems; validation only buys
	// better diagnostics.
	SkipValidation bool

	// Logger overrides the runner's logger for this execution.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks the options and fills defaults in place.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	for _, f := range o.Formats {
		switch f {
		case FormatKLE, FormatQMK:
		default:
			return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", f)
		}
	}
	return nil
}

// mode returns the resolution mode label used in logs and hooks.
func (o *Options) mode() string {
	if o.Selection == nil {
		return "default"
	}
	return "explicit"
}

// Stats records per-stage timings and sizes for one execution.
type Stats struct {
	DecodeTime  time.Duration
	ResolveTime time.Duration
	EmitTime    time.Duration

	// InputKeyCount is the number of keys decoded from the document;
	// KeyCount the number surviving resolution.
	InputKeyCount int
	KeyCount      int
}

// Result is the outcome of one pipeline execution.
type Result struct {
	// ID uniquely identifies this execution, for log correlation.
	ID string

	// Keyboard is the resolved keyboard: for default synthesis a fresh copy,
	// for explicit selections the (mutated) decoded keyboard.
	Keyboard *kle.Keyboard

	// Keys is the flat resolved key list in reading order.
	Keys []*kle.Key

	// Artifacts maps each requested format to its encoded bytes.
	Artifacts map[string][]byte

	Stats Stats
}

// codeFor maps library sentinel errors onto boundary error codes.
func codeFor(err error) errors.Code {
	switch {
	case stderrors.Is(err, multilayout.ErrSelectionArityMismatch),
		stderrors.Is(err, multilayout.ErrSelectionIndexOutOfRange):
		return errors.ErrCodeInvalidSelection
	case stderrors.Is(err, multilayout.ErrMalformedMultilayoutLabel),
		stderrors.Is(err, multilayout.ErrMalformedMatrixLabel),
		stderrors.Is(err, multilayout.ErrMissingDefaultOption):
		return errors.ErrCodeMalformedLabel
	default:
		return errors.ErrCodeInvalidDocument
	}
}
