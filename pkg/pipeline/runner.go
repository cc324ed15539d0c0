package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/keebtools/keylayout/pkg/buildinfo"
	"github.com/keebtools/keylayout/pkg/errors"
	"github.com/keebtools/keylayout/pkg/kle"
	"github.com/keebtools/keylayout/pkg/multilayout"
	"github.com/keebtools/keylayout/pkg/observability"
	"github.com/keebtools/keylayout/pkg/qmk"
)

// Runner executes the decode → resolve → emit pipeline.
//
// The Runner is stateless except for its logger - it stores no pipeline
// results. Multiple goroutines can safely share one Runner as long as each
// call works on its own input bytes.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete pipeline over one raw KLE document.
//
// All failures are fatal for the request and carry a pkg/errors code; the
// originating library sentinel stays reachable through errors.Is. There is
// no partial-result mode.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(&opts)
	obs := observability.Pipeline()

	result := &Result{
		ID:        uuid.NewString(),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}
	logger.Debug("executing pipeline", "run", result.ID, "version", buildinfo.Version)

	// Stage 1: decode
	decodeStart := time.Now()
	obs.OnDecodeStart(ctx, len(data))
	kbd, err := r.decode(data, &opts)
	result.Stats.DecodeTime = time.Since(decodeStart)
	obs.OnDecodeComplete(ctx, keyCount(kbd), result.Stats.DecodeTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.InputKeyCount = len(kbd.Keys)
	logger.Info("decoded keyboard",
		"keys", len(kbd.Keys),
		"duration", result.Stats.DecodeTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: resolve
	resolveStart := time.Now()
	obs.OnResolveStart(ctx, opts.mode(), len(kbd.Keys))
	keys, resolved, err := r.resolve(kbd, opts.Selection)
	result.Stats.ResolveTime = time.Since(resolveStart)
	obs.OnResolveComplete(ctx, opts.mode(), len(keys), result.Stats.ResolveTime, err)
	if err != nil {
		return nil, errors.Wrap(codeFor(err), err, "resolve %s layout", opts.mode())
	}
	result.Keys = keys
	result.Keyboard = resolved
	result.Stats.KeyCount = len(keys)
	logger.Info("resolved layout",
		"mode", opts.mode(),
		"keys", len(keys),
		"duration", result.Stats.ResolveTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: emit
	emitStart := time.Now()
	obs.OnEmitStart(ctx, opts.Formats)
	err = r.emit(result, opts.Formats)
	result.Stats.EmitTime = time.Since(emitStart)
	obs.OnEmitComplete(ctx, opts.Formats, result.Stats.EmitTime, err)
	if err != nil {
		return nil, err
	}
	logger.Info("emitted artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.EmitTime)

	return result, nil
}

// decode validates and parses the raw document.
func (r *Runner) decode(data []byte, opts *Options) (*kle.Keyboard, error) {
	if !opts.SkipValidation {
		if err := kle.ValidateDocument(data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "validate layout document")
		}
	}
	kbd, err := kle.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode layout document")
	}
	return kbd, nil
}

// resolve runs the selector or the default synthesizer. For explicit
// selections the decoded keyboard is mutated in place and returned; for
// default synthesis the synthesizer's private copy is returned and the
// decoded keyboard stays untouched.
func (r *Runner) resolve(kbd *kle.Keyboard, sel multilayout.Selection) ([]*kle.Key, *kle.Keyboard, error) {
	if sel == nil {
		resolved, err := multilayout.ResolveDefault(kbd)
		if err != nil {
			return nil, nil, err
		}
		return resolved.Keys, resolved, nil
	}
	keys, err := multilayout.Resolve(kbd, sel)
	if err != nil {
		return nil, nil, err
	}
	return keys, kbd, nil
}

// emit encodes the requested artifacts from the resolved key list.
func (r *Runner) emit(result *Result, formats []string) error {
	for _, f := range formats {
		switch f {
		case FormatKLE:
			data, err := kle.Serialize(&kle.Keyboard{Meta: result.Keyboard.Meta, Keys: result.Keys})
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "encode %s artifact", f)
			}
			result.Artifacts[f] = data
		case FormatQMK:
			data, err := json.MarshalIndent(qmk.FromKeys(result.Keys), "", "  ")
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "encode %s artifact", f)
			}
			result.Artifacts[f] = data
		}
	}
	return nil
}

func (r *Runner) logger(opts *Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func keyCount(kbd *kle.Keyboard) int {
	if kbd == nil {
		return 0
	}
	return len(kbd.Keys)
}
