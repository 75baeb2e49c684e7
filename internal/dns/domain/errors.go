package domain

import "fmt"

// InitError means the system resolver configuration could not be loaded.
// It is fatal for the session that hit it; a fresh session is built per
// query, so each lookup fails or succeeds on its own.
type InitError struct {
	Cause error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("could not initialize system resolver: %v", e.Cause)
}

// Unwrap returns the underlying cause.
func (e *InitError) Unwrap() error { return e.Cause }

// LookupFailedError means the network query itself failed: timeout,
// NXDOMAIN, SERVFAIL or an unreachable server. Cause carries the
// per-attempt diagnostics.
type LookupFailedError struct {
	Name  string
	Cause error
}

func (e *LookupFailedError) Error() string {
	return fmt.Sprintf("failed to look up %q: %v", e.Name, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *LookupFailedError) Unwrap() error { return e.Cause }

// InvalidResponseError means the returned buffer is not a parseable DNS
// message. The queried name is kept for diagnostics.
type InvalidResponseError struct {
	Name string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid DNS answer for %q", e.Name)
}

// InvalidRecordError means a specific resource record failed framing or
// type-specific decoding. Decoding is all-or-nothing per response, so the
// whole lookup fails with the index of the offending record.
type InvalidRecordError struct {
	Index int
	Cause error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record %d of DNS answer: %v", e.Index, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *InvalidRecordError) Unwrap() error { return e.Cause }
