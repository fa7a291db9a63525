// Package alert delivers newly detected codes to the user.
//
// Adapters:
//   - Clipboard: system clipboard via atotto/clipboard
//   - Notifier, Beeper: desktop notification and sound via beeep
//   - TerminalPopup: a bordered code box written to a terminal
//   - Dispatcher: applies the alert toggles across the collaborators above
package alert
