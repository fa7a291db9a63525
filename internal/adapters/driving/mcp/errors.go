// Package mcp provides an MCP (Model Context Protocol) server adapter for OneTimePaste.
// It lets AI assistants read recently received one-time passcodes.
package mcp

import "errors"

// ErrMissingScanner is returned when the scanner is not provided.
var ErrMissingScanner = errors.New("mcp: scanner is required")
