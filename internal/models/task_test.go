package models

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"Open", StatusOpen, true},
		{"open", StatusOpen, true},
		{"  OPEN  ", StatusOpen, true},
		{"In Progress", StatusInProgress, true},
		{"in_progress", StatusInProgress, true},
		{"Closed", StatusClosed, true},
		{"Completed", StatusClosed, true},
		{"done", StatusClosed, true},
		{"Snoozed", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseStatus(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTerminal(t *testing.T) {
	if StatusOpen.Terminal() || StatusInProgress.Terminal() {
		t.Error("non-closed statuses report terminal")
	}
	if !StatusClosed.Terminal() {
		t.Error("Closed does not report terminal")
	}
}

func TestDomainErrorCodes(t *testing.T) {
	err := WrapError(ErrCodeStorage, "save tasks", errors.New("disk full"))
	if !IsDomainError(err, ErrCodeStorage) {
		t.Error("wrapped error lost its code")
	}
	if IsDomainError(err, ErrCodeNotFound) {
		t.Error("code matched the wrong class")
	}
	if got := err.Error(); got != "save tasks: disk full" {
		t.Errorf("Error() = %q", got)
	}

	if !errors.Is(WrapError(ErrCodeInvalid, "unknown status", ErrInvalidStatus), ErrInvalidStatus) {
		t.Error("wrapped sentinel not matched by errors.Is")
	}
}
