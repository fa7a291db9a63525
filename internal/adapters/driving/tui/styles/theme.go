// Package styles holds the palette and lipgloss styles for the code list TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colours the TUI draws with.
type Palette struct {
	Accent lipgloss.Color
	Code   lipgloss.Color
	Sender lipgloss.Color
	Text   lipgloss.Color
	Dim    lipgloss.Color
	Bad    lipgloss.Color
	Bar    lipgloss.Color
}

// DefaultPalette returns the dark palette used unless configured otherwise.
func DefaultPalette() *Palette {
	return &Palette{
		Accent: lipgloss.Color("#7C3AED"),
		Code:   lipgloss.Color("#A6E3A1"),
		Sender: lipgloss.Color("#06B6D4"),
		Text:   lipgloss.Color("#CDD6F4"),
		Dim:    lipgloss.Color("#6C7086"),
		Bad:    lipgloss.Color("#F38BA8"),
		Bar:    lipgloss.Color("#181825"),
	}
}

// Styles are the rendered styles derived from a Palette.
type Styles struct {
	palette *Palette

	Title    lipgloss.Style
	Header   lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	// Code renders a passcode in the list.
	Code lipgloss.Style

	// Sender renders the handle a code came from.
	Sender lipgloss.Style

	// Timestamp renders when a code was received.
	Timestamp lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds styles from p. A nil palette uses DefaultPalette.
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		palette:   p,
		Title:     fg(p.Accent).Bold(true),
		Header:    fg(p.Sender).Bold(true),
		Text:      fg(p.Text),
		Muted:     fg(p.Dim),
		Selected:  fg(p.Text).Background(p.Accent).Bold(true),
		Error:     fg(p.Bad),
		Success:   fg(p.Code),
		Code:      fg(p.Code).Bold(true),
		Sender:    fg(p.Sender),
		Timestamp: fg(p.Dim).Italic(true),
		StatusBar: fg(p.Dim).Background(p.Bar).Padding(0, 1),
		Help:      fg(p.Dim),
	}
}

// DefaultStyles returns styles for the default palette.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Palette returns the colours these styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}
