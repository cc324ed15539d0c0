package multilayout

import (
	"errors"
	"testing"

	"github.com/keebtools/keylayout/pkg/kle"
)

func TestResolveDefault_AllEqualPicksAnchor(t *testing.T) {
	// Both options have two keys and identical matrix coordinates, so the
	// anchor option wins and reconciliation adds nothing.
	kbd := board(
		withMatrix(mlKey(0, 0, 0, 0), 0, 0),
		withMatrix(mlKey(1, 0, 0, 0), 0, 1),
		withMatrix(mlKey(0, 1, 0, 1), 0, 0),
		withMatrix(mlKey(1.5, 1, 0, 1), 0, 1),
	)

	out, err := ResolveDefault(kbd)
	if err != nil {
		t.Fatalf("ResolveDefault() error = %v", err)
	}
	if len(out.Keys) != 2 {
		t.Fatalf("len(Keys) = %d, want 2", len(out.Keys))
	}
	if out.Keys[0].X != 0 || out.Keys[1].X != 1 {
		t.Errorf("keys at X %v and %v, want 0 and 1", out.Keys[0].X, out.Keys[1].X)
	}
}

func TestResolveDefault_LargestOptionWins(t *testing.T) {
	// A one-key anchor against a three-key split option; the split wins and
	// is translated onto the anchor position.
	kbd := board(
		withMatrix(mlKey(0, 0, 0, 0), 0, 0),
		withMatrix(mlKey(4, 2, 0, 1), 0, 0),
		withMatrix(mlKey(5, 2, 0, 1), 0, 1),
		withMatrix(mlKey(6, 2, 0, 1), 0, 2),
	)

	out, err := ResolveDefault(kbd)
	if err != nil {
		t.Fatalf("ResolveDefault() error = %v", err)
	}
	if len(out.Keys) != 3 {
		t.Fatalf("len(Keys) = %d, want 3", len(out.Keys))
	}
	for i, wantX := range []float64{0, 1, 2} {
		if out.Keys[i].X != wantX || out.Keys[i].Y != 0 {
			t.Errorf("key %d at (%v, %v), want (%v, 0)", i, out.Keys[i].X, out.Keys[i].Y, wantX)
		}
	}
}

func TestResolveDefault_DoesNotModifyInput(t *testing.T) {
	alt := withMatrix(mlKey(4, 2, 0, 1), 0, 1)
	kbd := board(
		withMatrix(mlKey(0, 0, 0, 0), 0, 0),
		alt,
		withMatrix(mlKey(5, 2, 0, 1), 0, 2),
	)

	out, err := ResolveDefault(kbd)
	if err != nil {
		t.Fatalf("ResolveDefault() error = %v", err)
	}
	if alt.X != 4 || alt.Y != 2 {
		t.Errorf("input key moved to (%v, %v), want (4, 2)", alt.X, alt.Y)
	}
	if len(kbd.Keys) != 3 {
		t.Errorf("input key list resized to %d, want 3", len(kbd.Keys))
	}
	for _, k := range out.Keys {
		if k == alt {
			t.Error("output aliases an input key object")
		}
	}
}

func TestResolveDefault_ReconcilesMissingMatrixPositions(t *testing.T) {
	// The winning option covers matrix (0,0)-(0,2); both losing keys sit at
	// (9,9), which the winner lacks. Only the first is rescued, unmodified.
	d := withMatrix(mlKey(10, 5, 0, 1), 9, 9)
	e := withMatrix(mlKey(12, 5, 0, 1), 9, 9)
	kbd := board(
		withMatrix(mlKey(0, 0, 0, 0), 0, 0),
		withMatrix(mlKey(1, 0, 0, 0), 0, 1),
		withMatrix(mlKey(2, 0, 0, 0), 0, 2),
		d, e,
	)

	out, err := ResolveDefault(kbd)
	if err != nil {
		t.Fatalf("ResolveDefault() error = %v", err)
	}
	if len(out.Keys) != 4 {
		t.Fatalf("len(Keys) = %d, want 4", len(out.Keys))
	}
	var rescued *kle.Key
	for _, k := range out.Keys {
		if k.Label(slotValue) == "1" {
			if rescued != nil {
				t.Fatal("both losing keys rescued, want only the first")
			}
			rescued = k
		}
	}
	if rescued == nil {
		t.Fatal("no losing key rescued")
	}
	if rescued.X != 10 || rescued.Y != 5 {
		t.Errorf("rescued key at (%v, %v), want (10, 5)", rescued.X, rescued.Y)
	}
}

func TestResolveDefault_PlainKeysIncluded(t *testing.T) {
	kbd := board(
		testKey(0, 0, nil),
		withMatrix(mlKey(1, 0, 0, 0), 0, 0),
	)
	out, err := ResolveDefault(kbd)
	if err != nil {
		t.Fatalf("ResolveDefault() error = %v", err)
	}
	if len(out.Keys) != 2 {
		t.Errorf("len(Keys) = %d, want 2", len(out.Keys))
	}
}

func TestResolveDefault_PreservesMetadata(t *testing.T) {
	kbd := board(withMatrix(mlKey(0, 0, 0, 0), 0, 0))
	kbd.Meta.Name = "test60"
	out, err := ResolveDefault(kbd)
	if err != nil {
		t.Fatalf("ResolveDefault() error = %v", err)
	}
	if out.Meta.Name != "test60" {
		t.Errorf("Meta.Name = %q, want %q", out.Meta.Name, "test60")
	}
}

func TestResolveDefault_MalformedMatrixLabel(t *testing.T) {
	// Grouped keys without matrix coordinates cannot be reconciled.
	kbd := board(mlKey(0, 0, 0, 0), mlKey(1, 0, 0, 1))
	_, err := ResolveDefault(kbd)
	if !errors.Is(err, ErrMalformedMatrixLabel) {
		t.Errorf("ResolveDefault() error = %v, want ErrMalformedMatrixLabel", err)
	}
}

func TestResolveDefault_MissingDefaultOption(t *testing.T) {
	kbd := board(withMatrix(mlKey(0, 0, 0, 1), 0, 0))
	_, err := ResolveDefault(kbd)
	if !errors.Is(err, ErrMissingDefaultOption) {
		t.Errorf("ResolveDefault() error = %v, want ErrMissingDefaultOption", err)
	}
}
