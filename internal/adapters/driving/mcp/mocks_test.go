package mcp

import (
	"context"
	"time"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// mockScanner is a mock implementation of driving.Scanner.
type mockScanner struct {
	records []domain.OTPRecord
	err     error
	path    string
	pathErr error
	calls   int
}

func (m *mockScanner) Scan(_ context.Context) ([]domain.OTPRecord, error) {
	m.calls++
	return m.records, m.err
}

func (m *mockScanner) StorePath() (string, error) {
	return m.path, m.pathErr
}

func sampleRecords() []domain.OTPRecord {
	return []domain.OTPRecord{
		{ID: "1", Code: "482913", Sender: "+15551234567", Timestamp: testTime.Add(2 * time.Minute), FullMessage: "Your verification code is 482913"},
		{ID: "2", Code: "5512", Sender: "Unknown", Timestamp: testTime.Add(time.Minute), FullMessage: "Your code: 5512"},
		{ID: "3", Code: "771", Sender: "bank@example.com", Timestamp: testTime, FullMessage: "Login code 771"},
	}
}

func newTestServer(scanner *mockScanner) *Server {
	server, err := NewServer(&Ports{Scanner: scanner}, "test")
	if err != nil {
		panic(err)
	}
	return server
}
