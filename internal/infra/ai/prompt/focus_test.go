package prompt

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPromptsNameAllOutcomes(t *testing.T) {
	user := GetUserPrompt()
	for _, status := range []string{"FOCUSED", "DISTRACTED", "ABSENT"} {
		if !strings.Contains(user, status) {
			t.Errorf("user prompt does not mention %s", status)
		}
	}
	if GetSystemPrompt() == "" {
		t.Error("system prompt is empty")
	}
}

func TestResponseSchemaShape(t *testing.T) {
	raw, err := json.Marshal(ResponseSchema())
	if err != nil {
		t.Fatalf("schema does not marshal: %v", err)
	}

	var schema struct {
		Type       string                     `json:"type"`
		Properties map[string]json.RawMessage `json:"properties"`
		Required   []string                   `json:"required"`
	}
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	if schema.Type != "object" {
		t.Errorf("type = %q, want object", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Errorf("got %d properties, want exactly 3", len(schema.Properties))
	}
	for _, field := range []string{"status", "message", "confidence"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("schema is missing property %q", field)
		}
	}
	if len(schema.Required) != 3 {
		t.Errorf("required = %v, want all three fields", schema.Required)
	}
}
