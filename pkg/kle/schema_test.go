package kle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDocument(t *testing.T) {
	valid := []string{
		`[]`,
		`[["A","B"]]`,
		`[{"name":"planck"},["A"]]`,
		`[[{"x":1,"w":2.25,"a":0},"Shift"]]`,
		`[[{"r":-15,"rx":3,"ry":1},"A"]]`,
	}
	for _, doc := range valid {
		require.NoError(t, ValidateDocument([]byte(doc)), "doc %s", doc)
	}

	invalid := []string{
		`{`,                       // not JSON
		`{"name":"x"}`,            // not an array
		`[[{"a":8},"A"]]`,         // alignment out of range
		`[[{"w":0},"A"]]`,         // zero width
		`[[{"w":-1},"A"]]`,        // negative width
		`[[{"a":1.5},"A"]]`,       // non-integer alignment
		`[[42]]`,                  // number in a row
		`[[["nested"]]]`,          // nested array in a row
	}
	for _, doc := range invalid {
		require.Error(t, ValidateDocument([]byte(doc)), "doc %s", doc)
	}
}
