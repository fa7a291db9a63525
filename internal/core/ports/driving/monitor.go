package driving

import (
	"context"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// Monitor polls the message store and alerts on new codes.
type Monitor interface {
	// Start begins polling.
	// Blocks until context is cancelled, Stop is called, or an error occurs.
	Start(ctx context.Context) error

	// Stop gracefully stops polling and waits for an in-flight scan.
	Stop() error

	// Status returns a snapshot of the polling loop.
	Status() domain.MonitorStatus

	// Latest returns the result list of the last successful scan.
	Latest() []domain.OTPRecord
}
