package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/keebtools/keylayout/pkg/errors"
)

func TestParseVariantSpec(t *testing.T) {
	spec, err := ParseVariantSpec([]byte(`
[layouts]
ansi     = [0]
split_bs = [1]
`))
	require.NoError(t, err)
	require.Len(t, spec.Layouts, 2)
	require.Equal(t, []int{0}, spec.Layouts["ansi"])
	require.Equal(t, []int{1}, spec.Layouts["split_bs"])
}

func TestParseVariantSpec_Invalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"bad toml", `[layouts`},
		{"empty", ``},
		{"no layouts", `other = 1`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseVariantSpec([]byte(tc.data))
			require.Error(t, err)
			require.Equal(t, errors.ErrCodeInvalidSpec, errors.GetCode(err))
		})
	}
}

func TestResolveVariants(t *testing.T) {
	spec := &VariantSpec{Layouts: map[string][]int{
		"full":  {0},
		"split": {1},
	}}

	out, err := testRunner().ResolveVariants(context.Background(), []byte(testDoc), spec, Options{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Len(t, out["full"], 1)
	require.Len(t, out["split"], 2)

	// Each variant resolves against its own copy, so the split variant's
	// translation must not leak into the full variant.
	require.Equal(t, 0.0, out["full"][0].X)
	require.Equal(t, 0.0, out["split"][0].X)
	require.Equal(t, 2.0, out["split"][1].X)
}

func TestResolveVariants_BadSelection(t *testing.T) {
	spec := &VariantSpec{Layouts: map[string][]int{"broken": {7}}}
	_, err := testRunner().ResolveVariants(context.Background(), []byte(testDoc), spec, Options{})
	require.Error(t, err)
	require.Equal(t, errors.ErrCodeInvalidSelection, errors.GetCode(err))
	require.Contains(t, err.Error(), "broken")
}

func TestResolveVariants_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	spec := &VariantSpec{Layouts: map[string][]int{"ansi": {0}}}
	_, err := NewRunner(log.New(io.Discard)).ResolveVariants(ctx, []byte(testDoc), spec, Options{})
	require.ErrorIs(t, err, context.Canceled)
}
