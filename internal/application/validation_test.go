package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "path",
			value:     "data/A.txt",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "path",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "runID",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateRequired_MessageUsesDisplayName(t *testing.T) {
	err := ValidateRequired("runID", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "runID: run ID is required"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestValidateLimit(t *testing.T) {
	if err := ValidateLimit("limit", 0); err != nil {
		t.Errorf("zero limit should be valid, got %v", err)
	}
	if err := ValidateLimit("limit", 10); err != nil {
		t.Errorf("positive limit should be valid, got %v", err)
	}
	if err := ValidateLimit("limit", -1); err == nil {
		t.Error("negative limit should be invalid")
	}
}

func TestCycleError_MatchesSentinel(t *testing.T) {
	err := error(&CycleError{Chain: []string{"a.txt", "b.txt", "a.txt"}})

	if !errors.Is(err, ErrCyclicReference) {
		t.Error("expected CycleError to match ErrCyclicReference")
	}
	if got, want := err.Error(), "cyclic reference: a.txt -> b.txt -> a.txt"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRunNotFoundError_MatchesSentinel(t *testing.T) {
	err := error(&RunNotFoundError{ID: "abc"})
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected RunNotFoundError to match ErrNotFound")
	}
}
