package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/tui/components/list"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/tui/components/status"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/tui/keymap"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/tui/messages"
	"github.com/aidenappl/OneTimePaste/internal/adapters/driving/tui/styles"
	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// chromeHeight is the number of lines used by the header and status bar.
const chromeHeight = 4

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.CodeList
	statusbar *status.Bar

	// interval is the automatic refresh period.
	interval time.Duration

	// scanning is true while a scan command is outstanding.
	scanning bool

	// scan tracks completed and skipped refreshes for the status bar.
	scan domain.MonitorStatus

	showHelp bool

	// err holds the last scan error.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	interval := domain.DefaultAppSettings().Monitoring.Interval
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil && settings.Monitoring.Interval > 0 {
			interval = settings.Monitoring.Interval
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		list:      list.NewCodeList(s),
		statusbar: status.NewBar(s, km),
		interval:  interval,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts the first scan and the refresh timer.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("OneTimePaste"),
		a.startScan(),
		a.tick(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ScanRequested:
		return a, a.startScan()

	case messages.ScanCompleted:
		a.handleScanCompleted(msg)
		return a, nil

	case messages.RefreshTick:
		return a, tea.Batch(a.startScan(), a.tick())

	case messages.CodeCopied:
		if msg.Err != nil {
			a.statusbar.SetState(status.StateError)
			a.statusbar.SetMessage("Copy: " + msg.Err.Error())
		} else {
			a.statusbar.SetState(status.StateReady)
			a.statusbar.SetMessage("Copied " + msg.Code)
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Help):
		a.showHelp = !a.showHelp
		if a.showHelp {
			a.statusbar.SetState(status.StateHelp)
		} else {
			a.statusbar.SetState(status.StateReady)
		}
		return a, nil

	case key.Matches(msg, a.keymap.Copy):
		return a, a.copySelected()

	case key.Matches(msg, a.keymap.Refresh):
		a.statusbar.SetMessage("")
		return a, a.startScan()
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// startScan returns a command that scans in the background, or nil when
// a scan is already outstanding.
func (a *App) startScan() tea.Cmd {
	if a.scanning {
		a.scan.SkippedTicks++
		a.statusbar.SetScanStatus(a.scan)
		return nil
	}
	a.scanning = true
	a.statusbar.SetState(status.StateScanning)

	ctx, scanner := a.ctx, a.ports.Scanner
	return func() tea.Msg {
		records, err := scanner.Scan(ctx)
		return messages.ScanCompleted{Records: records, Err: err, At: time.Now()}
	}
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return messages.RefreshTick{}
	})
}

func (a *App) copySelected() tea.Cmd {
	record := a.list.SelectedRecord()
	clipboard := a.ports.Clipboard

	return func() tea.Msg {
		if record == nil {
			return messages.CodeCopied{Err: ErrNothingSelected}
		}
		if clipboard == nil {
			return messages.CodeCopied{Code: record.Code, Err: ErrClipboardUnavailable}
		}
		return messages.CodeCopied{Code: record.Code, Err: clipboard.Copy(record.Code)}
	}
}

func (a *App) handleScanCompleted(msg messages.ScanCompleted) {
	a.scanning = false
	a.scan.Scans++
	a.scan.LastScan = msg.At
	a.scan.LastError = ""

	if msg.Err != nil {
		a.scan.LastError = msg.Err.Error()
		a.statusbar.SetScanStatus(a.scan)
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return
	}

	a.err = nil
	a.list.SetRecords(msg.Records)
	a.scan.LastCount = len(msg.Records)
	a.statusbar.SetScanStatus(a.scan)
	if a.statusbar.State() != status.StateHelp {
		a.statusbar.SetState(status.StateReady)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, a.styles.Title.Render("OneTimePaste"), "")

	if a.showHelp {
		sections = append(sections, a.statusbar.FullHelp())
	} else {
		if a.err != nil {
			sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
		}
		sections = append(sections, a.list.View())
	}

	sections = append(sections, "", a.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the terminal size and lays out the components.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.list.SetDimensions(width, height-chromeHeight)
	a.statusbar.SetWidth(width)
}

// Records returns the codes currently listed.
func (a *App) Records() []domain.OTPRecord {
	return a.list.Records()
}

// SelectedIndex returns the selected list index.
func (a *App) SelectedIndex() int {
	return a.list.Selected()
}

// Err returns the last scan error.
func (a *App) Err() error {
	return a.err
}

// Scanning reports whether a scan is outstanding.
func (a *App) Scanning() bool {
	return a.scanning
}

// Interval returns the refresh interval.
func (a *App) Interval() time.Duration {
	return a.interval
}

// ScanStatus returns the refresh loop's counters.
func (a *App) ScanStatus() domain.MonitorStatus {
	return a.scan
}

// StatusMessage returns the status bar message.
func (a *App) StatusMessage() string {
	return a.statusbar.Message()
}
