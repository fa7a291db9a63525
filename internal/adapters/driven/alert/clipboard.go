package alert

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
)

// Ensure Clipboard implements the interface.
var _ driven.Clipboard = (*Clipboard)(nil)

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this system")

// Clipboard writes to the system clipboard.
type Clipboard struct{}

// NewClipboard creates a system clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy writes text to the clipboard.
func (c *Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
