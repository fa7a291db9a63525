package logger

import (
	"bytes"
	"errors"
	"os"
	"sync"
	"testing"

	"go.uber.org/zap"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestPrintfHelpers_WhenVerbose(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{"debug", func() { Debug("scan took %dms", 12) }, "[DEBUG] scan took 12ms\n"},
		{"info", func() { Info("found %d codes", 2) }, "[INFO] found 2 codes\n"},
		{"warn", func() { Warn("store %s", "missing") }, "[WARN] store missing\n"},
		{"section", func() { Section("Scan") }, "\n=== Scan ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			if buf.String() != tt.expected {
				t.Errorf("unexpected output: %q", buf.String())
			}
		})
	}
}

func TestPrintfHelpers_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestError_AlwaysPrints(t *testing.T) {
	buf := capture(t, false)

	Error("scan failed: %v", errors.New("locked"))

	if buf.String() != "[ERROR] scan failed: locked\n" {
		t.Errorf("unexpected error output: %q", buf.String())
	}
}

func TestNamed_StructuredFields(t *testing.T) {
	buf := capture(t, false)

	Named("monitor").Warn("tick skipped", zap.Int("skipped", 3))
	Named("monitor").Info("not shown")

	want := "[WARN] monitor tick skipped {\"skipped\": 3}\n"
	if buf.String() != want {
		t.Errorf("unexpected structured output: %q", buf.String())
	}
}

func TestSchedulerLogger(t *testing.T) {
	buf := capture(t, true)

	l := NewSchedulerLogger(L())
	l.Debug("job ran", "name", "scan")
	l.Error("job failed", "name", "scan")

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("[DEBUG] job ran {\"name\": \"scan\"}")) {
		t.Errorf("missing debug line: %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("[ERROR] job failed")) {
		t.Errorf("missing error line: %q", out)
	}
}

func TestSchedulerLogger_NilLogger(t *testing.T) {
	l := NewSchedulerLogger(nil)
	l.Info("discarded")
	l.Warn("discarded", "k", "v")
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
