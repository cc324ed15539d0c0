package observability

import (
	"context"
	"testing"
	"time"
)

type countingHooks struct {
	NoopPipelineHooks
	decodes int
}

func (h *countingHooks) OnDecodeStart(context.Context, int) { h.decodes++ }

func TestDefaultIsNoop(t *testing.T) {
	Reset()
	h := Pipeline()
	if _, ok := h.(NoopPipelineHooks); !ok {
		t.Fatalf("default hooks = %T, want NoopPipelineHooks", h)
	}
	// Must not panic.
	h.OnDecodeStart(context.Background(), 0)
	h.OnDecodeComplete(context.Background(), 0, time.Second, nil)
	h.OnResolveStart(context.Background(), "default", 0)
	h.OnResolveComplete(context.Background(), "default", 0, 0, nil)
	h.OnEmitStart(context.Background(), nil)
	h.OnEmitComplete(context.Background(), nil, 0, nil)
}

func TestSetPipelineHooks(t *testing.T) {
	defer Reset()

	custom := &countingHooks{}
	SetPipelineHooks(custom)
	Pipeline().OnDecodeStart(context.Background(), 42)
	if custom.decodes != 1 {
		t.Errorf("decodes = %d, want 1", custom.decodes)
	}
}

func TestSetPipelineHooks_NilIgnored(t *testing.T) {
	defer Reset()

	custom := &countingHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("nil registration replaced the active hooks")
	}
}

func TestReset(t *testing.T) {
	SetPipelineHooks(&countingHooks{})
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() did not restore the no-op hooks")
	}
}
