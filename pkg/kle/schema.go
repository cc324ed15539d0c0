package kle

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed kle.schema.json
var schemaJSON string

var layoutSchema = jsonschema.MustCompileString("kle.schema.json", schemaJSON)

// ValidateDocument checks a raw KLE document against the embedded JSON
// Schema before any decoding takes place. It catches structural problems
// (non-array documents, malformed rows, out-of-range property values) with
// schema-quality diagnostics; Parse still performs its own semantic checks.
func ValidateDocument(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("kle: document is not valid JSON: %w", err)
	}
	if err := layoutSchema.Validate(doc); err != nil {
		return fmt.Errorf("kle: document failed schema validation: %w", err)
	}
	return nil
}
