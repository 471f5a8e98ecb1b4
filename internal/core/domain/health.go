package domain

import "time"

// HealthState is the tri-state health signal derived from a health check.
type HealthState int

const (
	// HealthUnreachable means the transport call itself failed.
	HealthUnreachable HealthState = iota

	// HealthDegraded means the service answered but did not report a
	// healthy status. Callers may continue with reduced expectations.
	HealthDegraded

	// HealthHealthy means the service reported itself healthy.
	HealthHealthy
)

// String returns a human-readable state name.
func (s HealthState) String() string {
	switch s {
	case HealthHealthy:
		return "healthy"
	case HealthDegraded:
		return "degraded"
	default:
		return "unreachable"
	}
}

// HealthReport is the outcome of a health check. A report is always
// produced: transport failures yield State HealthUnreachable with Error
// set rather than an error return.
type HealthReport struct {
	// State is the derived tri-state signal.
	State HealthState

	// Status is the raw status string from the service body, if any.
	Status string

	// Database is the service-reported database status, if any.
	Database string

	// Version is the service-reported version, if any.
	Version string

	// Elapsed is the client-measured round-trip time.
	Elapsed time.Duration

	// Error describes the failure when State is HealthUnreachable.
	Error string
}
