// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/tui/keymap"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/tui/styles"
	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// scanTimeLayout formats the last scan time.
const scanTimeLayout = "15:04:05"

// State represents the current application state for display.
type State string

const (
	StateReady    State = "ready"
	StateScanning State = "scanning"
	StateError    State = "error"
	StateHelp     State = "help"
)

// Bar displays the refresh loop's progress and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	scan    domain.MonitorStatus
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateScanning:
		return s.styles.Muted.Render("Scanning...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Text.Render("Help")
	case StateReady:
		if s.message != "" {
			return s.styles.Success.Render(s.message)
		}
		if summary := s.scanSummary(); summary != "" {
			return s.styles.Text.Render(summary)
		}
	}
	return s.styles.Muted.Render("Ready")
}

// scanSummary describes the last completed scan, e.g.
// "3 codes, scanned 15:04:05, 2 skipped". It is empty before the first scan.
func (s *Bar) scanSummary() string {
	if s.scan.LastScan.IsZero() {
		return ""
	}

	parts := []string{codeCount(s.scan.LastCount), "scanned " + s.scan.LastScan.Format(scanTimeLayout)}
	if s.scan.SkippedTicks > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", s.scan.SkippedTicks))
	}
	return strings.Join(parts, ", ")
}

func codeCount(n int) string {
	if n == 1 {
		return "1 code"
	}
	return fmt.Sprintf("%d codes", n)
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func bindingHelp(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%-8s %s", h.Key, h.Desc)
}

// FullHelp renders every binding, one per line.
func (s *Bar) FullHelp() string {
	var lines []string
	for _, group := range s.keymap.FullHelp() {
		for _, b := range group {
			lines = append(lines, s.styles.Help.Render(bindingHelp(b)))
		}
	}
	return strings.Join(lines, "\n")
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a transient message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetScanStatus records the refresh loop's latest snapshot.
func (s *Bar) SetScanStatus(st domain.MonitorStatus) {
	s.scan = st
}

// ScanStatus returns the last recorded snapshot.
func (s *Bar) ScanStatus() domain.MonitorStatus {
	return s.scan
}

// LastScan returns when the last scan completed, or the zero time.
func (s *Bar) LastScan() time.Time {
	return s.scan.LastScan
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.scan = domain.MonitorStatus{}
}
