// Package domain defines the core entities for OneTimePaste.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CandidateMessage: decoded text read from the message store
//   - OTPRecord: a detected one-time passcode
//   - AppSettings: monitoring, detection and alert configuration
//   - MonitorStatus: a snapshot of the polling loop
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
