// Package domain defines the core business entities for smlgo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Result: The uniform success/error/payload/timing envelope
//   - ServiceDescriptor: The service's self-description document
//   - HealthReport: Tri-state service health
//   - Province, Amphure, Tambon: The administrative hierarchy
//   - Command: A parsed interactive-session command
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
