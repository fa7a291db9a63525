package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driving"
	"github.com/aidenappl/OneTimePaste/internal/logger"
)

// Ensure MonitorService implements the interface.
var _ driving.Monitor = (*MonitorService)(nil)

const scanJobName = "scan"

// MonitorService polls the message store on a fixed interval and hands
// new codes to the alert sink. At most one scan runs at a time.
type MonitorService struct {
	scanner  driving.Scanner
	settings driving.SettingsService
	alerts   driven.AlertSink
	watcher  driven.StoreWatcher
	tracker  *DeltaTracker
	logger   *zap.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	done    chan struct{}

	inFlight atomic.Bool

	stateMu sync.RWMutex
	latest  []domain.OTPRecord
	status  domain.MonitorStatus
}

// NewMonitorService creates a monitor. settings, alerts and watcher may be nil.
func NewMonitorService(
	scanner driving.Scanner,
	settings driving.SettingsService,
	alerts driven.AlertSink,
	watcher driven.StoreWatcher,
	logger *zap.Logger,
) *MonitorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := currentSettings(settings, logger)
	return &MonitorService{
		scanner:  scanner,
		settings: settings,
		alerts:   alerts,
		watcher:  watcher,
		tracker:  NewDeltaTracker(cfg.Monitoring.DeltaMode),
		logger:   logger,
	}
}

// Start begins polling. The first scan runs immediately and sets the
// baseline. Blocks until ctx is cancelled or Stop is called.
func (s *MonitorService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return domain.ErrMonitorRunning
	}

	cfg := currentSettings(s.settings, s.logger)
	s.tracker.SetMode(cfg.Monitoring.DeltaMode)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(logger.NewSchedulerLogger(s.logger)),
	)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("creating scheduler: %w", err)
	}

	job, err := sched.NewJob(
		gocron.DurationJob(cfg.Monitoring.Interval),
		gocron.NewTask(s.tick, runCtx),
		gocron.WithName(scanJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		s.mu.Unlock()
		_ = sched.Shutdown()
		return fmt.Errorf("scheduling scan: %w", err)
	}

	s.running = true
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	stopCh, done := s.stopCh, s.done
	s.mu.Unlock()

	s.setRunning(true)
	s.logger.Info("monitor started",
		zap.Duration("interval", cfg.Monitoring.Interval),
		zap.String("delta_mode", cfg.Monitoring.DeltaMode.String()),
	)

	g, gCtx := errgroup.WithContext(runCtx)
	if s.watcher != nil && cfg.Monitoring.WatchStore {
		g.Go(func() error {
			return s.watchStore(gCtx, job, cfg.Monitoring.Interval)
		})
	}

	sched.Start()

	g.Go(func() error {
		select {
		case <-gCtx.Done():
		case <-stopCh:
		}
		cancel()
		return nil
	})

	runErr := g.Wait()
	shutdownErr := sched.Shutdown()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	s.setRunning(false)
	close(done)

	s.logger.Info("monitor stopped")
	return errors.Join(runErr, shutdownErr)
}

// Stop signals the polling loop to exit and waits for it to finish.
func (s *MonitorService) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return domain.ErrMonitorNotRunning
	}
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	done := s.done
	s.mu.Unlock()

	<-done
	return nil
}

// Status returns a snapshot of the polling loop.
func (s *MonitorService) Status() domain.MonitorStatus {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.status
}

// Latest returns a copy of the last successful result list.
func (s *MonitorService) Latest() []domain.OTPRecord {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	out := make([]domain.OTPRecord, len(s.latest))
	copy(out, s.latest)
	return out
}

// RunOnce performs one scan and alerts on new codes. It returns the new
// records, or domain.ErrScanInProgress when another scan is running.
func (s *MonitorService) RunOnce(ctx context.Context) ([]domain.OTPRecord, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.stateMu.Lock()
		s.status.SkippedTicks++
		s.stateMu.Unlock()
		s.logger.Debug("scan skipped, previous scan still running")
		return nil, domain.ErrScanInProgress
	}
	defer s.inFlight.Store(false)

	records, err := s.scanner.Scan(ctx)
	now := time.Now()
	if err != nil {
		s.stateMu.Lock()
		s.status.Scans++
		s.status.LastScan = now
		s.status.LastError = err.Error()
		s.stateMu.Unlock()
		s.logger.Warn("scan failed", zap.Error(err))
		return nil, err
	}

	fresh := s.tracker.Observe(records)

	s.stateMu.Lock()
	s.latest = records
	s.status.Scans++
	s.status.LastScan = now
	s.status.LastError = ""
	s.status.LastCount = len(records)
	s.stateMu.Unlock()

	if len(fresh) > 0 {
		s.logger.Info("new codes detected", zap.Int("count", len(fresh)))
		s.deliver(ctx, fresh)
	}
	return fresh, nil
}

// tick is the scheduled task body.
func (s *MonitorService) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	_, _ = s.RunOnce(ctx)
}

// deliver alerts oldest first so the newest code is handled last.
func (s *MonitorService) deliver(ctx context.Context, fresh []domain.OTPRecord) {
	if s.alerts == nil {
		return
	}
	alerts := currentSettings(s.settings, s.logger).Alerts
	for i := len(fresh) - 1; i >= 0; i-- {
		if err := s.alerts.Deliver(ctx, fresh[i], alerts); err != nil {
			s.logger.Warn("delivering alert", zap.String("code", fresh[i].Code), zap.Error(err))
		}
	}
}

// watchStore runs an extra scan when the store changes, at most once per interval.
func (s *MonitorService) watchStore(ctx context.Context, job gocron.Job, interval time.Duration) error {
	path, err := s.scanner.StorePath()
	if err != nil {
		s.logger.Warn("store watch disabled", zap.Error(err))
		return nil
	}

	events, err := s.watcher.Watch(ctx, path)
	if err != nil {
		s.logger.Warn("store watch disabled", zap.String("store", path), zap.Error(err))
		return nil
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if !limiter.Allow() {
				continue
			}
			if err := job.RunNow(); err != nil {
				s.logger.Debug("store change scan not started", zap.Error(err))
			}
		}
	}
}

func (s *MonitorService) setRunning(running bool) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.status.Running = running
}
