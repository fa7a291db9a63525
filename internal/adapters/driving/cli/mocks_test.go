package cli

import (
	"context"
	"sync"
	"time"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testRecords() []domain.OTPRecord {
	return []domain.OTPRecord{
		{ID: "a", Code: "482913", Sender: "+15551234567", Timestamp: testTime.Add(2 * time.Minute), FullMessage: "Your verification code is 482913"},
		{ID: "b", Code: "5512", Sender: "Unknown", Timestamp: testTime.Add(time.Minute), FullMessage: "Your code: 5512"},
		{ID: "c", Code: "771", Sender: "bank@example.com", Timestamp: testTime, FullMessage: "Login code 771"},
	}
}

// mockScanner implements driving.Scanner.
type mockScanner struct {
	records []domain.OTPRecord
	err     error
	path    string
	pathErr error
}

func (m *mockScanner) Scan(_ context.Context) ([]domain.OTPRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockScanner) StorePath() (string, error) {
	return m.path, m.pathErr
}

// mockMonitor implements driving.Monitor. Start blocks until ctx is done.
type mockMonitor struct {
	mu       sync.Mutex
	started  bool
	startErr error
	status   domain.MonitorStatus
}

func (m *mockMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
	if m.startErr != nil {
		return m.startErr
	}
	<-ctx.Done()
	return nil
}

func (m *mockMonitor) Stop() error { return nil }

func (m *mockMonitor) Status() domain.MonitorStatus { return m.status }

func (m *mockMonitor) Latest() []domain.OTPRecord { return nil }

func (m *mockMonitor) wasStarted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

// mockSettingsService implements driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	getErr   error
	setErr   error
	setKey   string
	setValue string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.settings == nil {
		d := domain.DefaultAppSettings()
		return &d, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = settings
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	m.setKey = key
	m.setValue = value
	return m.setErr
}

func (m *mockSettingsService) Keys() []string { return nil }

// setupTestServices wires mocks and returns a cleanup func restoring globals.
func setupTestServices() (*mockScanner, *mockMonitor, *mockSettingsService, func()) {
	oldScan, oldMonitor, oldSettings, oldClipboard := scanService, monitorService, settingsService, clipboard

	scanner := &mockScanner{records: testRecords(), path: "/Users/test/Library/Messages/chat.db"}
	monitor := &mockMonitor{}
	settings := &mockSettingsService{}
	SetServices(&Services{Scanner: scanner, Monitor: monitor, Settings: settings})

	return scanner, monitor, settings, func() {
		scanService, monitorService, settingsService, clipboard = oldScan, oldMonitor, oldSettings, oldClipboard
	}
}
