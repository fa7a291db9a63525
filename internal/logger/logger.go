// Package logger provides logging for OneTimePaste.
//
// The printf-style helpers (Debug, Info, Warn, Section) only print when
// verbose mode is enabled via the --verbose flag. L returns the shared
// structured zap logger used by services; it always emits warnings and
// errors, and emits debug output when verbose.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr

	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	base  = newLogger()
)

// outputSyncer forwards writes to the current output writer.
type outputSyncer struct{}

func (outputSyncer) Write(p []byte) (int, error) {
	mu.RLock()
	w := output
	mu.RUnlock()
	return w.Write(p)
}

func (outputSyncer) Sync() error { return nil }

func newLogger() *zap.Logger {
	enc := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		NameKey:          "logger",
		EncodeLevel:      bracketLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(outputSyncer{}), level)
	return zap.New(core)
}

func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// L returns the shared structured logger.
func L() *zap.Logger {
	return base
}

// Named returns a child of the shared logger for one component.
func Named(component string) *zap.Logger {
	return base.Named(component)
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.WarnLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	if IsVerbose() {
		base.Debug(fmt.Sprintf(format, args...))
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	if IsVerbose() {
		base.Info(fmt.Sprintf(format, args...))
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	if IsVerbose() {
		base.Warn(fmt.Sprintf(format, args...))
	}
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	base.Error(fmt.Sprintf(format, args...))
}
