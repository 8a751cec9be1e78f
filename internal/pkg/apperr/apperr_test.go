package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_CollectsPerField(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Fatal("fresh error should be empty")
	}

	ve.Add("name", "too short")
	ve.Add("name", "looks wrong")
	ve.Add("tags", "required")

	if !ve.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(ve.Fields["name"]) != 2 || len(ve.Fields["tags"]) != 1 {
		t.Fatalf("unexpected fields: %v", ve.Fields)
	}
}

func TestValidationError_ErrorStringIsDeterministic(t *testing.T) {
	ve := NewValidationError()
	ve.Add("b", "second")
	ve.Add("a", "first")

	want := "validation failed: a: first, b: second"
	if got := ve.Error(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestAsValidation_UnwrapsWrappedErrors(t *testing.T) {
	ve := NewValidationError()
	ve.Add("name", "too short")
	wrapped := fmt.Errorf("saving recipe: %w", ve)

	got, ok := AsValidation(wrapped)
	if !ok || got != ve {
		t.Fatalf("expected to unwrap the original error, got %v ok=%v", got, ok)
	}

	if _, ok := AsValidation(errors.New("plain")); ok {
		t.Fatal("plain error must not unwrap")
	}
}
