package driving

import (
	"context"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// Scanner runs one full read, decode, detect and assemble pass.
type Scanner interface {
	// Scan returns detected codes ordered most recent first, with one
	// record per unique code. It returns either the full list or a
	// store-level error, never both.
	Scan(ctx context.Context) ([]domain.OTPRecord, error)

	// StorePath returns the message store path the next scan will read.
	StorePath() (string, error)
}
