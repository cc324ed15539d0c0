// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Embedders register hooks
// at startup to receive events about layout pipeline execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - A hook interface per event category
//   - No-op default implementations
//   - Registration of custom implementations at startup
//
// This keeps the library free of observability frameworks while supporting
// any backend (OpenTelemetry, Prometheus, plain counters) from main.
//
// # Usage
//
//	func main() {
//	    observability.SetPipelineHooks(&myHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the layout resolution pipeline.
type PipelineHooks interface {
	// Decode events
	OnDecodeStart(ctx context.Context, size int)
	OnDecodeComplete(ctx context.Context, keyCount int, duration time.Duration, err error)

	// Resolve events; mode is "explicit" or "default"
	OnResolveStart(ctx context.Context, mode string, keyCount int)
	OnResolveComplete(ctx context.Context, mode string, keyCount int, duration time.Duration, err error)

	// Emit events
	OnEmitStart(ctx context.Context, formats []string)
	OnEmitComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDecodeStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnDecodeComplete(context.Context, int, time.Duration, error)       {}
func (NoopPipelineHooks) OnResolveStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnResolveComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnEmitStart(context.Context, []string)                        {}
func (NoopPipelineHooks) OnEmitComplete(context.Context, []string, time.Duration, error) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
