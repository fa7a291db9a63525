package mcp

import (
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Scanner reads and detects codes.
	Scanner driving.Scanner
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Scanner == nil {
		return ErrMissingScanner
	}
	return nil
}
