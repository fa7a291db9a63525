package logger

import (
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Ensure SchedulerLogger implements gocron.Logger.
var _ gocron.Logger = (*SchedulerLogger)(nil)

// SchedulerLogger adapts a zap logger to gocron's key/value logger.
type SchedulerLogger struct {
	s *zap.SugaredLogger
}

// NewSchedulerLogger wraps l for use with gocron.WithLogger.
// A nil logger discards everything.
func NewSchedulerLogger(l *zap.Logger) *SchedulerLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &SchedulerLogger{s: l.Sugar()}
}

func (l *SchedulerLogger) Debug(msg string, args ...any) { l.s.Debugw(msg, args...) }

func (l *SchedulerLogger) Info(msg string, args ...any) { l.s.Infow(msg, args...) }

func (l *SchedulerLogger) Warn(msg string, args ...any) { l.s.Warnw(msg, args...) }

func (l *SchedulerLogger) Error(msg string, args ...any) { l.s.Errorw(msg, args...) }
