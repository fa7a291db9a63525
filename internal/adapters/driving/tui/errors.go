package tui

import "errors"

// ErrMissingScanner is returned when the scanner is not provided.
var ErrMissingScanner = errors.New("tui: scanner is required")

// ErrClipboardUnavailable is returned by the copy action when no clipboard is wired.
var ErrClipboardUnavailable = errors.New("tui: clipboard not available")

// ErrNothingSelected is returned by the copy action when the list is empty.
var ErrNothingSelected = errors.New("tui: no code selected")
