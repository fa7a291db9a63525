package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driving"
)

// Ensure ScanService implements the interface.
var _ driving.Scanner = (*ScanService)(nil)

// ScanService runs the locate, read, detect and assemble pipeline.
type ScanService struct {
	locator  driven.StoreLocator
	reader   driven.MessageReader
	settings driving.SettingsService
	logger   *zap.Logger
}

// NewScanService creates a scan service. settings may be nil, in which
// case defaults apply.
func NewScanService(
	locator driven.StoreLocator,
	reader driven.MessageReader,
	settings driving.SettingsService,
	logger *zap.Logger,
) *ScanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScanService{
		locator:  locator,
		reader:   reader,
		settings: settings,
		logger:   logger,
	}
}

// Scan performs one full pass over the most recent messages.
// Locating the store is retried from scratch on every call.
func (s *ScanService) Scan(ctx context.Context) ([]domain.OTPRecord, error) {
	start := time.Now()
	cfg := currentSettings(s.settings, s.logger)

	path, err := s.locator.Locate()
	if err != nil {
		return nil, err
	}

	timeout := cfg.Monitoring.QueryTimeout
	if timeout <= 0 {
		timeout = domain.DefaultAppSettings().Monitoring.QueryTimeout
	}
	readCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	messages, err := s.reader.ReadMessages(readCtx, path, domain.MaxScanRows)
	if err != nil {
		return nil, err
	}

	detector := NewCodeDetector(cfg.Detection)
	detections := make([]Detection, 0, len(messages))
	for _, msg := range messages {
		if code, ok := detector.Detect(msg.Text); ok {
			detections = append(detections, Detection{Message: msg, Code: code})
		}
	}

	records := Assemble(detections)
	s.logger.Debug("scan complete",
		zap.String("store", path),
		zap.Int("messages", len(messages)),
		zap.Int("codes", len(records)),
		zap.Duration("took", time.Since(start)),
	)
	return records, nil
}

// StorePath returns the store the next scan will read.
func (s *ScanService) StorePath() (string, error) {
	return s.locator.Locate()
}

// currentSettings loads settings, falling back to defaults when the
// settings service is absent or fails.
func currentSettings(settings driving.SettingsService, logger *zap.Logger) domain.AppSettings {
	if settings == nil {
		return domain.DefaultAppSettings()
	}
	cfg, err := settings.Get()
	if err != nil || cfg == nil {
		logger.Warn("loading settings, using defaults", zap.Error(err))
		return domain.DefaultAppSettings()
	}
	return *cfg
}
