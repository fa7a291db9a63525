package domain

import "time"

// Detector hard limits. Configured bounds can only narrow these.
const (
	DetectorMinDigits = 3
	DetectorMaxDigits = 9
)

// MaxScanRows caps how many recent rows a scan reads.
const MaxScanRows = 200

// PollIntervals are the selectable monitoring intervals.
var PollIntervals = []time.Duration{
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
	5 * time.Second,
}

// IsPollInterval reports whether d is one of PollIntervals.
func IsPollInterval(d time.Duration) bool {
	for _, p := range PollIntervals {
		if p == d {
			return true
		}
	}
	return false
}

// MonitoringSettings controls the polling loop.
type MonitoringSettings struct {
	// Interval between scans.
	Interval time.Duration `validate:"pollinterval"`

	// DeltaMode selects new-record detection.
	DeltaMode DeltaMode `validate:"oneof=set count"`

	// QueryTimeout bounds store open and query time per scan.
	QueryTimeout time.Duration `validate:"min=1s,max=60s"`

	// WatchStore triggers extra scans when the store file changes.
	WatchStore bool
}

// DetectionSettings narrows the detector's digit-length window.
type DetectionSettings struct {
	MinLength int `validate:"min=3,max=6"`
	MaxLength int `validate:"min=6,max=12,gtefield=MinLength"`
}

// AlertSettings gates what happens when a new code is seen.
type AlertSettings struct {
	AutoCopy          bool
	ShowPopup         bool
	ShowNotifications bool
	PlaySound         bool
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Monitoring MonitoringSettings
	Detection  DetectionSettings
	Alerts     AlertSettings
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Monitoring: MonitoringSettings{
			Interval:     time.Second,
			DeltaMode:    DeltaModeSet,
			QueryTimeout: 5 * time.Second,
			WatchStore:   true,
		},
		Detection: DetectionSettings{
			MinLength: DetectorMinDigits,
			MaxLength: DetectorMaxDigits,
		},
		Alerts: AlertSettings{
			AutoCopy:          true,
			ShowPopup:         true,
			ShowNotifications: true,
			PlaySound:         true,
		},
	}
}

// DigitBounds returns the effective detector window: the configured
// bounds clipped to the detector's hard limits.
func (d DetectionSettings) DigitBounds() (lo, hi int) {
	lo, hi = d.MinLength, d.MaxLength
	if lo < DetectorMinDigits {
		lo = DetectorMinDigits
	}
	if hi > DetectorMaxDigits || hi == 0 {
		hi = DetectorMaxDigits
	}
	return lo, hi
}
