package validator

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	ID    string  `validate:"required"`
	Price float64 `validate:"gte=0"`
}

// TestValidateStructAcceptsValidInput tests that a valid struct passes
func TestValidateStructAcceptsValidInput(t *testing.T) {
	if err := New().ValidateStruct(sample{ID: "p1", Price: 1}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

// TestMessagesListsEveryFailedField tests that Messages reports one line per failed field
func TestMessagesListsEveryFailedField(t *testing.T) {
	err := New().ValidateStruct(sample{Price: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}

	messages := Messages(err)
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d: %v", len(messages), messages)
	}
	if !strings.Contains(messages[0], "sample.ID failed on required") {
		t.Errorf("unexpected first message %q", messages[0])
	}
	if !strings.Contains(messages[1], "gte=0") {
		t.Errorf("expected param in second message, got %q", messages[1])
	}
}

// TestMessagesFallsBackToErrorText tests non-validation errors
func TestMessagesFallsBackToErrorText(t *testing.T) {
	messages := Messages(errors.New("boom"))
	if len(messages) != 1 || messages[0] != "boom" {
		t.Errorf("expected [boom], got %v", messages)
	}
}
