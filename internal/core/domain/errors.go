package domain

import "errors"

// Domain errors represent scan and configuration failures.
// Adapters wrap these with context so callers can match with errors.Is.
var (
	// ErrStoreNotFound indicates none of the candidate store paths exist
	// or are readable. The next scan retries discovery from scratch.
	ErrStoreNotFound = errors.New("message store not found")

	// ErrStoreOpen indicates the store exists but could not be opened read-only.
	ErrStoreOpen = errors.New("message store open failed")

	// ErrQuery indicates the recent-messages query could not be prepared or executed.
	ErrQuery = errors.New("message store query failed")

	// ErrInvalidSettings indicates settings failed validation.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrUnknownSetting indicates a settings key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrScanInProgress indicates a scan was requested while another was running.
	ErrScanInProgress = errors.New("scan in progress")

	// ErrMonitorRunning indicates Start was called on a running monitor.
	ErrMonitorRunning = errors.New("monitor already running")

	// ErrMonitorNotRunning indicates Stop was called on a stopped monitor.
	ErrMonitorNotRunning = errors.New("monitor not running")
)

// IsStoreError reports whether err is one of the three store-level scan failures.
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreNotFound) ||
		errors.Is(err, ErrStoreOpen) ||
		errors.Is(err, ErrQuery)
}
