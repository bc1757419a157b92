package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":    map[string]any{"type": "string"},
			"duration": map[string]any{"type": "integer"},
			"strand":   map[string]any{"type": "string", "enum": []any{"finance", "marketing", "production"}},
			"key_points": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"title", "duration"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	if schema.Properties["duration"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for duration, got %s", schema.Properties["duration"].Type)
	}
	if len(schema.Properties["strand"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["strand"].Enum))
	}
	if schema.Properties["key_points"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for key_points, got %s", schema.Properties["key_points"].Type)
	}
	if schema.Properties["key_points"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for key_points items, got %s", schema.Properties["key_points"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
