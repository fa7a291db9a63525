// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StoreLocator: Finds the message store file
//   - MessageReader: Reads recent messages read-only
//   - BodyDecoder: Turns rich-body blobs into text
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - StoreWatcher: Triggers scans on store writes. Without it, scans run on the interval only.
//   - AlertSink: Delivers new codes to the user. Without it, new codes are only logged.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
