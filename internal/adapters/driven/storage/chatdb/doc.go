// Package chatdb reads the macOS Messages store (chat.db).
//
// The adapter implements two driven ports:
//
//   - StoreLocator: picks the first readable chat.db among known paths
//   - MessageReader: runs a bounded, most-recent-first query
//
// # Access Mode
//
// The store belongs to the Messages app. It is always opened through a
// read-only SQLite URI with query_only enabled, and is never created when
// missing. Each read opens and closes its own handle, so nothing is shared
// between scans.
//
// # Candidate Paths
//
//	<home>/Library/Messages/chat.db
//	/Users/<username>/Library/Messages/chat.db
//
// An explicit path replaces the candidate list entirely.
//
// # Timestamps
//
// message.date holds nanoseconds since 2001-01-01 UTC and is converted
// with domain.StoreTime.
package chatdb
