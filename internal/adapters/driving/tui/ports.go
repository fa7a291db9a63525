// Package tui provides an interactive terminal user interface for OneTimePaste.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scanner reads and detects codes.
	Scanner driving.Scanner

	// Settings supplies the refresh interval. Optional.
	Settings driving.SettingsService

	// Clipboard backs the copy action. Optional.
	Clipboard driven.Clipboard
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Scanner == nil {
		return ErrMissingScanner
	}
	return nil
}
