package services

import (
	"strconv"
	"sync"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// DeltaTracker identifies records that are new since the previous scan.
// The first observation only establishes a baseline.
type DeltaTracker struct {
	mu        sync.Mutex
	mode      domain.DeltaMode
	primed    bool
	lastCount int
	lastKeys  map[string]struct{}
}

// NewDeltaTracker creates a tracker. An invalid mode falls back to set mode.
func NewDeltaTracker(mode domain.DeltaMode) *DeltaTracker {
	if !mode.IsValid() {
		mode = domain.DeltaModeSet
	}
	return &DeltaTracker{mode: mode, lastKeys: make(map[string]struct{})}
}

// SetMode switches the comparison used by later observations.
// The baseline is kept.
func (t *DeltaTracker) SetMode(mode domain.DeltaMode) {
	if !mode.IsValid() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = mode
}

// Mode returns the active comparison mode.
func (t *DeltaTracker) Mode() domain.DeltaMode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// Reset discards the baseline.
func (t *DeltaTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.primed = false
	t.lastCount = 0
	t.lastKeys = make(map[string]struct{})
}

// Observe records a scan result and returns the entries considered new,
// in result order. records must be sorted most recent first.
func (t *DeltaTracker) Observe(records []domain.OTPRecord) []domain.OTPRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys := make(map[string]struct{}, len(records))
	for i := range records {
		keys[recordKey(records[i])] = struct{}{}
	}

	var fresh []domain.OTPRecord
	if t.primed {
		switch t.mode {
		case domain.DeltaModeCount:
			if n := len(records) - t.lastCount; n > 0 {
				fresh = append(fresh, records[:n]...)
			}
		default:
			for i := range records {
				if _, seen := t.lastKeys[recordKey(records[i])]; !seen {
					fresh = append(fresh, records[i])
				}
			}
		}
	}

	t.primed = true
	t.lastCount = len(records)
	t.lastKeys = keys
	return fresh
}

func recordKey(r domain.OTPRecord) string {
	return r.Code + "@" + strconv.FormatInt(r.Timestamp.UnixNano(), 10)
}
