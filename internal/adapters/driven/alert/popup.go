package alert

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
)

// Ensure TerminalPopup implements the interface.
var _ driven.Popup = (*TerminalPopup)(nil)

var popupBox = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7C3AED")).
	Padding(0, 2)

var popupCode = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#A6E3A1"))

var popupMuted = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6C7086"))

// TerminalPopup writes a code box to a terminal.
// Output that is not a terminal gets plain lines.
type TerminalPopup struct {
	out    io.Writer
	styled bool
}

// NewTerminalPopup creates a popup that writes to out.
// Styling is enabled only when out is a terminal.
func NewTerminalPopup(out io.Writer) *TerminalPopup {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalPopup{out: out, styled: isTerminal(out)}
}

// NewStyledPopup creates a popup that always renders the bordered box.
func NewStyledPopup(out io.Writer) *TerminalPopup {
	return &TerminalPopup{out: out, styled: true}
}

// Show writes the popup for record.
func (p *TerminalPopup) Show(record domain.OTPRecord) error {
	_, err := fmt.Fprintln(p.out, p.Render(record))
	return err
}

// Render returns the popup text for record.
func (p *TerminalPopup) Render(record domain.OTPRecord) string {
	received := record.Timestamp.Local().Format("15:04:05")

	if !p.styled {
		return strings.Join([]string{
			"One-Time Passcode: " + record.Code,
			"From: " + record.Sender,
			"Received: " + received,
		}, "\n")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		"🔑 One-Time Passcode",
		popupCode.Render(record.Code),
		popupMuted.Render("from "+record.Sender+" at "+received),
	)
	return popupBox.Render(body)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
