package handler

import (
	"strings"
	"testing"
)

func TestValidator_FieldMessages(t *testing.T) {
	type sample struct {
		Name *string `json:"first_name" validate:"required"`
		Kind string  `json:"kind" validate:"oneof=a b"`
	}

	err := NewValidator().Validate(&sample{Kind: "c"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "first_name is required") {
		t.Fatalf("expected required message, got %q", msg)
	}
	if !strings.Contains(msg, "kind failed validation (oneof)") {
		t.Fatalf("expected generic message, got %q", msg)
	}
}
