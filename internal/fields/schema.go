package fields

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildFieldsJSONSchema returns the JSON-Schema (draft 2020-12 subset) for
// the extracted-fields artifact persisted on an import item. Validated
// locally before any write so a future extractor cannot smuggle malformed
// output into the database.
func BuildFieldsJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"full_name": map[string]any{"type": "string", "minLength": 1},
			"email":     map[string]any{"type": "string", "pattern": `^[^@\s]+@[^@\s]+$`},
			"phone":     map[string]any{"type": "string", "minLength": 1},
			"confidence": map[string]any{
				"type":       "integer",
				"minimum":    0,
				"maximum":    100,
				"multipleOf": 20,
			},
		},
		"required": []string{"confidence"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
