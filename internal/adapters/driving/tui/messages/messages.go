// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// ScanRequested asks the app to rescan the message store.
type ScanRequested struct{}

// ScanCompleted carries scan results back to the model.
type ScanCompleted struct {
	Records []domain.OTPRecord
	Err     error
	// At is when the scan finished.
	At time.Time
}

// RefreshTick fires on the poll interval.
type RefreshTick struct{}

// CodeCopied reports the outcome of a copy action.
type CodeCopied struct {
	Code string
	Err  error
}
