package alert

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
)

// Ensure Dispatcher implements the interface.
var _ driven.AlertSink = (*Dispatcher)(nil)

// Notification titles.
const (
	TitleCopied = "🔑 OTP Copied to Clipboard"
	TitleNew    = "🔑 New One-Time Passcode"
)

// NotificationBody returns the notification text for code.
func NotificationBody(code string) string {
	return "One-Time Passcode: " + code
}

// Dispatcher fans a record out to the enabled collaborators.
// Any collaborator may be nil, in which case its toggle is ignored.
type Dispatcher struct {
	clipboard driven.Clipboard
	notifier  driven.DesktopNotifier
	sound     driven.SoundPlayer
	popup     driven.Popup
	logger    *zap.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(
	clipboard driven.Clipboard,
	notifier driven.DesktopNotifier,
	sound driven.SoundPlayer,
	popup driven.Popup,
	logger *zap.Logger,
) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		clipboard: clipboard,
		notifier:  notifier,
		sound:     sound,
		popup:     popup,
		logger:    logger,
	}
}

// Deliver runs each enabled collaborator. A failing collaborator does not
// stop the others; all failures are returned joined.
func (d *Dispatcher) Deliver(ctx context.Context, record domain.OTPRecord, alerts domain.AlertSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error

	copied := false
	if alerts.AutoCopy && d.clipboard != nil {
		if err := d.clipboard.Copy(record.Code); err != nil {
			errs = append(errs, err)
		} else {
			copied = true
		}
	}

	if alerts.ShowPopup && d.popup != nil {
		if err := d.popup.Show(record); err != nil {
			errs = append(errs, fmt.Errorf("popup: %w", err))
		}
	}

	if alerts.ShowNotifications && d.notifier != nil {
		title := TitleNew
		if copied {
			title = TitleCopied
		}
		if err := d.notifier.Notify(title, NotificationBody(record.Code)); err != nil {
			errs = append(errs, err)
		}
	}

	if alerts.PlaySound && d.sound != nil {
		if err := d.sound.Play(); err != nil {
			errs = append(errs, err)
		}
	}

	d.logger.Debug("alert delivered",
		zap.String("sender", record.Sender),
		zap.Bool("copied", copied),
		zap.Int("failures", len(errs)),
	)

	return errors.Join(errs...)
}
