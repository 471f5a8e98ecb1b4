package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	// Validation failures are rejected before any transport call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDiscoveryFailed indicates the service's self-description could not
	// be fetched. This is the only fatal error class: a session must not
	// dispatch operations without a successful discovery.
	ErrDiscoveryFailed = errors.New("discovery failed")

	// ErrServiceUnreachable indicates the remote service did not respond.
	ErrServiceUnreachable = errors.New("service unreachable")

	// ErrGatewayNotConfigured indicates no API gateway has been wired in.
	ErrGatewayNotConfigured = errors.New("api gateway not configured")
)
