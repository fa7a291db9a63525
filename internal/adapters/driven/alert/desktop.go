package alert

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
)

var (
	_ driven.DesktopNotifier = (*Notifier)(nil)
	_ driven.SoundPlayer     = (*Beeper)(nil)
)

// Notifier posts desktop notifications.
type Notifier struct {
	icon string
}

// NewNotifier creates a notifier. icon may be empty.
func NewNotifier(icon string) *Notifier {
	return &Notifier{icon: icon}
}

// Notify posts a notification with title and body.
func (n *Notifier) Notify(title, body string) error {
	if err := beeep.Notify(title, body, n.icon); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

// Beeper plays the system alert tone.
type Beeper struct {
	freq     float64
	duration int
}

// NewBeeper creates a beeper with the default tone.
func NewBeeper() *Beeper {
	return &Beeper{freq: beeep.DefaultFreq, duration: beeep.DefaultDuration}
}

// Play sounds the tone once.
func (b *Beeper) Play() error {
	if err := beeep.Beep(b.freq, b.duration); err != nil {
		return fmt.Errorf("beep: %w", err)
	}
	return nil
}
