package domain

import "time"

// DeltaMode selects how new records are identified between scans.
type DeltaMode string

const (
	// DeltaModeSet treats a record as new when its code and timestamp
	// were absent from the previous scan.
	DeltaModeSet DeltaMode = "set"

	// DeltaModeCount treats the leading (new - old) records as new
	// when the result count grows.
	DeltaModeCount DeltaMode = "count"
)

// IsValid returns true if the delta mode is recognised.
func (m DeltaMode) IsValid() bool {
	switch m {
	case DeltaModeSet, DeltaModeCount:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m DeltaMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m DeltaMode) Description() string {
	switch m {
	case DeltaModeSet:
		return "Set difference (code + timestamp)"
	case DeltaModeCount:
		return "Count comparison"
	default:
		return "Unknown"
	}
}

// MonitorStatus is a snapshot of the polling loop.
type MonitorStatus struct {
	Running      bool      `json:"running"`
	Scans        int       `json:"scans"`
	SkippedTicks int       `json:"skipped_ticks"`
	LastScan     time.Time `json:"last_scan"`
	LastError    string    `json:"last_error,omitempty"`
	LastCount    int       `json:"last_count"`
}
