// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/tui/styles"
	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// linesPerRecord is the rendered height of one record.
const linesPerRecord = 2

// CodeList displays detected codes in a navigable list.
type CodeList struct {
	records  []domain.OTPRecord
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewCodeList creates a new code list component.
func NewCodeList(s *styles.Styles) *CodeList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CodeList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the code list.
func (c *CodeList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *CodeList) Update(msg tea.Msg) (*CodeList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			c.MoveUp()
		case "down", "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// View renders the code list.
func (c *CodeList) View() string {
	if len(c.records) == 0 {
		return c.styles.Muted.Render("No codes found")
	}

	lines := make([]string, 0, len(c.records)*linesPerRecord+2)

	header := c.styles.Header.Render(fmt.Sprintf("Codes (%d)", len(c.records)))
	lines = append(lines, header, "")

	visibleCount := (c.height - 2) / linesPerRecord
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if c.selected >= visibleCount {
		start = c.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(c.records) {
		end = len(c.records)
	}

	for i := start; i < end; i++ {
		lines = append(lines, c.renderRecord(i, &c.records[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRecord formats a single record with a message preview.
func (c *CodeList) renderRecord(index int, record *domain.OTPRecord) string {
	indicator := "  "
	if index == c.selected {
		indicator = "> "
	}

	received := record.Timestamp.Local().Format("Jan 2 15:04:05")

	var codeLine string
	if index == c.selected {
		codeLine = c.styles.Selected.Render(fmt.Sprintf("%s%-9s  %s  %s", indicator, record.Code, record.Sender, received))
	} else {
		codeLine = indicator +
			c.styles.Code.Render(fmt.Sprintf("%-9s", record.Code)) + "  " +
			c.styles.Sender.Render(record.Sender) + "  " +
			c.styles.Timestamp.Render(received)
	}

	preview := strings.Join(strings.Fields(record.FullMessage), " ")
	maxPreviewLen := c.width - 6
	if maxPreviewLen < 20 {
		maxPreviewLen = 20
	}
	if runes := []rune(preview); len(runes) > maxPreviewLen {
		preview = string(runes[:maxPreviewLen-3]) + "..."
	}

	return codeLine + "\n" + c.styles.Muted.Render("    "+preview)
}

// SetRecords replaces the list contents. The selection follows the
// previously selected code when it is still present.
func (c *CodeList) SetRecords(records []domain.OTPRecord) {
	var selectedCode string
	if r := c.SelectedRecord(); r != nil {
		selectedCode = r.Code
	}

	c.records = records
	c.selected = 0
	for i := range records {
		if records[i].Code == selectedCode {
			c.selected = i
			break
		}
	}
}

// Records returns the current records.
func (c *CodeList) Records() []domain.OTPRecord {
	return c.records
}

// Selected returns the index of the selected record.
func (c *CodeList) Selected() int {
	return c.selected
}

// SetSelected sets the selected index.
func (c *CodeList) SetSelected(index int) {
	if index >= 0 && index < len(c.records) {
		c.selected = index
	}
}

// SelectedRecord returns the currently selected record, or nil if none.
func (c *CodeList) SelectedRecord() *domain.OTPRecord {
	if len(c.records) == 0 || c.selected < 0 || c.selected >= len(c.records) {
		return nil
	}
	return &c.records[c.selected]
}

// MoveUp moves selection up.
func (c *CodeList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves selection down.
func (c *CodeList) MoveDown() {
	if c.selected < len(c.records)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *CodeList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of records.
func (c *CodeList) Count() int {
	return len(c.records)
}

// IsEmpty returns whether the list is empty.
func (c *CodeList) IsEmpty() bool {
	return len(c.records) == 0
}
