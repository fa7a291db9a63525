package tui

import (
	"context"
	"time"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func sampleRecords() []domain.OTPRecord {
	return []domain.OTPRecord{
		{Code: "482913", Sender: "+15551234567", Timestamp: baseTime.Add(2 * time.Minute), FullMessage: "Your verification code is 482913"},
		{Code: "5512", Sender: "Unknown", Timestamp: baseTime.Add(time.Minute), FullMessage: "Your code: 5512"},
	}
}

type mockScanner struct {
	records []domain.OTPRecord
	err     error
	calls   int
}

func (m *mockScanner) Scan(_ context.Context) ([]domain.OTPRecord, error) {
	m.calls++
	return m.records, m.err
}

func (m *mockScanner) StorePath() (string, error) {
	return "/tmp/chat.db", nil
}

type mockSettings struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettings) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		d := domain.DefaultAppSettings()
		return &d, nil
	}
	return m.settings, nil
}

func (m *mockSettings) Save(*domain.AppSettings) error { return nil }

func (m *mockSettings) Set(string, string) error { return nil }

func (m *mockSettings) Keys() []string { return nil }

type mockClipboard struct {
	copied string
	err    error
}

func (m *mockClipboard) Copy(text string) error {
	m.copied = text
	return m.err
}
