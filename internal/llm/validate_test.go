package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer"},
			},
			"required": []string{"title"},
		},
	}
}

func TestValidateResponse_NilSchemaAlwaysPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_ValidPayload(t *testing.T) {
	raw := json.RawMessage(`{"title":"algebra","count":3}`)
	if err := validateResponse(testSchema("valid_payload"), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"count":3}`)
	err := validateResponse(testSchema("missing_required"), raw)
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if string(inv.Content) != string(raw) {
		t.Fatalf("error should carry the raw content, got: %s", inv.Content)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(testSchema("malformed"), json.RawMessage(`{"title":`))
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":42}`)
	if err := validateResponse(testSchema("wrong_type"), raw); err == nil {
		t.Fatal("expected error for non-string title")
	}
}

func TestCompileSchema_Cached(t *testing.T) {
	s := testSchema("cache_check")
	first, err := compileSchema(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := compileSchema(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatal("expected cached schema instance on second compile")
	}
}
