package services

import (
	"context"
	"sync"
	"time"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// mockLocator implements driven.StoreLocator.
type mockLocator struct {
	path string
	err  error
}

func (m *mockLocator) Locate() (string, error) { return m.path, m.err }

func (m *mockLocator) Candidates() []string { return []string{m.path} }

// mockReader implements driven.MessageReader.
type mockReader struct {
	mu       sync.Mutex
	messages []domain.CandidateMessage
	err      error
	calls    int
	limit    int
	deadline bool
	block    chan struct{}
}

func (m *mockReader) ReadMessages(ctx context.Context, _ string, limit int) ([]domain.CandidateMessage, error) {
	m.mu.Lock()
	m.calls++
	m.limit = limit
	_, m.deadline = ctx.Deadline()
	block := m.block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return m.messages, m.err
}

func (m *mockReader) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockConfigStore implements driven.ConfigStore in memory.
type mockConfigStore struct {
	mu     sync.RWMutex
	data   map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	v, _ := m.Get(key)
	s, _ := v.(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	v, _ := m.Get(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	v, _ := m.Get(key)
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	v, _ := m.Get(key)
	b, _ := v.(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error  { return nil }
func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "/tmp/config.toml" }

// mockAlertSink implements driven.AlertSink.
type mockAlertSink struct {
	mu        sync.Mutex
	delivered []domain.OTPRecord
	alerts    []domain.AlertSettings
	err       error
}

func (m *mockAlertSink) Deliver(_ context.Context, rec domain.OTPRecord, alerts domain.AlertSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered = append(m.delivered, rec)
	m.alerts = append(m.alerts, alerts)
	return m.err
}

func (m *mockAlertSink) codes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.delivered))
	for i, r := range m.delivered {
		out[i] = r.Code
	}
	return out
}

// mockWatcher implements driven.StoreWatcher.
type mockWatcher struct {
	events chan struct{}
	err    error
	path   string
}

func (m *mockWatcher) Watch(_ context.Context, path string) (<-chan struct{}, error) {
	m.path = path
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

// fixedSettings implements driving.SettingsService with static values.
type fixedSettings struct {
	settings domain.AppSettings
	err      error
}

func (f *fixedSettings) Get() (*domain.AppSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := f.settings
	return &s, nil
}

func (f *fixedSettings) Save(s *domain.AppSettings) error {
	f.settings = *s
	return nil
}

func (f *fixedSettings) Set(_, _ string) error { return nil }

func (f *fixedSettings) Keys() []string { return nil }

var baseTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func at(offset time.Duration) time.Time { return baseTime.Add(offset) }

func msg(text, sender string, ts time.Time) domain.CandidateMessage {
	return domain.CandidateMessage{Text: text, Sender: sender, Timestamp: ts}
}
