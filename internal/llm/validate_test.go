package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"value": map[string]any{"type": "integer"},
			},
			"required":             []any{"value"},
			"additionalProperties": false,
		},
	}
}

func TestValidateSchema_Valid(t *testing.T) {
	if err := ValidateSchema(testSchema(), json.RawMessage(`{"value": 42}`)); err != nil {
		t.Errorf("ValidateSchema: %v", err)
	}
}

func TestValidateSchema_MissingRequiredField(t *testing.T) {
	err := ValidateSchema(testSchema(), json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected validation error for missing field")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("error type = %T, want *ErrInvalidResponse", err)
	}
	if string(invResp.Content) != `{}` {
		t.Errorf("Content = %s, want the raw payload preserved", invResp.Content)
	}
}

func TestValidateSchema_MalformedJSON(t *testing.T) {
	err := ValidateSchema(testSchema(), json.RawMessage(`{"value": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateSchema_NilSchemaPasses(t *testing.T) {
	if err := ValidateSchema(nil, json.RawMessage(`anything, even invalid`)); err != nil {
		t.Errorf("nil schema should accept any payload, got %v", err)
	}
}
