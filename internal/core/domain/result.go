package domain

import (
	"fmt"
	"time"
)

// Result is the uniform envelope returned by every dispatcher operation.
// All failure paths - transport errors, service-reported errors, local
// validation errors - are folded into a Result rather than raised, so a
// caller can always inspect Success, Error and Elapsed regardless of what
// went wrong.
type Result struct {
	// Success reports whether the operation succeeded.
	// When true, Error is always empty.
	Success bool

	// Data is the payload. Its shape depends on the operation: a slice of
	// records for queries and searches, typed slices for the administrative
	// hierarchy, or nil for commands. When Success is false callers must
	// ignore Data.
	Data any

	// Message is an optional human-readable message from the service.
	Message string

	// Error is the failure description. Empty when Success is true.
	Error string

	// RowCount is the number of rows reported by the service for queries.
	RowCount int

	// TotalFound is the total number of server-side matches for searches.
	// It may exceed the number of records in Data when a limit was applied.
	TotalFound int

	// Elapsed is the client-measured time from just before the transport
	// call to just after response normalisation. Set on every dispatch,
	// including failures.
	Elapsed time.Duration

	// ServerDuration is the server-reported duration in milliseconds,
	// when present in the response body.
	ServerDuration float64
}

// Failure builds a failed Result with a formatted error message.
func Failure(elapsed time.Duration, format string, args ...any) Result {
	return Result{
		Success: false,
		Error:   fmt.Sprintf(format, args...),
		Elapsed: elapsed,
	}
}

// Records returns Data as a slice of generic records, or nil when the
// payload has a different shape.
func (r Result) Records() []map[string]any {
	records, ok := r.Data.([]map[string]any)
	if !ok {
		return nil
	}
	return records
}

// Provinces returns Data as a province slice, or nil.
func (r Result) Provinces() []Province {
	provinces, ok := r.Data.([]Province)
	if !ok {
		return nil
	}
	return provinces
}

// Amphures returns Data as an amphure slice, or nil.
func (r Result) Amphures() []Amphure {
	amphures, ok := r.Data.([]Amphure)
	if !ok {
		return nil
	}
	return amphures
}

// Tambons returns Data as a tambon slice, or nil.
func (r Result) Tambons() []Tambon {
	tambons, ok := r.Data.([]Tambon)
	if !ok {
		return nil
	}
	return tambons
}

// Locations returns Data as a location slice, or nil.
func (r Result) Locations() []Location {
	locations, ok := r.Data.([]Location)
	if !ok {
		return nil
	}
	return locations
}
