package driven

import (
	"context"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// AlertSink delivers a newly observed code to the user.
type AlertSink interface {
	// Deliver runs every collaborator enabled in alerts.
	Deliver(ctx context.Context, record domain.OTPRecord, alerts domain.AlertSettings) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// DesktopNotifier posts a system notification.
type DesktopNotifier interface {
	Notify(title, body string) error
}

// SoundPlayer plays an audible alert.
type SoundPlayer interface {
	Play() error
}

// Popup shows a transient code popup.
type Popup interface {
	Show(record domain.OTPRecord) error
}
