package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		err  error
		want string
	}{
		{&InitError{Cause: cause}, `could not initialize system resolver: connection refused`},
		{&LookupFailedError{Name: "example.com", Cause: cause}, `failed to look up "example.com": connection refused`},
		{&InvalidResponseError{Name: "example.com"}, `invalid DNS answer for "example.com"`},
		{&InvalidRecordError{Index: 2, Cause: cause}, `invalid record 2 of DNS answer: connection refused`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cause := errors.New("boom")

	wrapped := fmt.Errorf("lookup step: %w", &LookupFailedError{Name: "x", Cause: cause})
	var lerr *LookupFailedError
	if !errors.As(wrapped, &lerr) {
		t.Fatal("errors.As failed to find *LookupFailedError")
	}
	if lerr.Name != "x" {
		t.Errorf("Name = %q, want %q", lerr.Name, "x")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is failed to reach the root cause through Unwrap")
	}

	var rerr *InvalidRecordError
	chain := fmt.Errorf("parse: %w", &InvalidRecordError{Index: 1, Cause: cause})
	if !errors.As(chain, &rerr) {
		t.Fatal("errors.As failed to find *InvalidRecordError")
	}
	if rerr.Index != 1 {
		t.Errorf("Index = %d, want 1", rerr.Index)
	}
}
