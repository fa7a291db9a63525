package alert

import (
	"sync"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// recorder captures collaborator calls in order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type mockClipboard struct {
	rec  *recorder
	text string
	err  error
}

func (m *mockClipboard) Copy(text string) error {
	m.rec.add("copy")
	m.text = text
	return m.err
}

type mockNotifier struct {
	rec   *recorder
	title string
	body  string
	err   error
}

func (m *mockNotifier) Notify(title, body string) error {
	m.rec.add("notify")
	m.title = title
	m.body = body
	return m.err
}

type mockSound struct {
	rec *recorder
	err error
}

func (m *mockSound) Play() error {
	m.rec.add("sound")
	return m.err
}

type mockPopup struct {
	rec    *recorder
	record domain.OTPRecord
	err    error
}

func (m *mockPopup) Show(record domain.OTPRecord) error {
	m.rec.add("popup")
	m.record = record
	return m.err
}
