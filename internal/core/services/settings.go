package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyInterval      = "monitoring.interval"
	keyDeltaMode     = "monitoring.delta_mode"
	keyQueryTimeout  = "monitoring.query_timeout"
	keyWatchStore    = "monitoring.watch_store"
	keyMinLength     = "detection.min_length"
	keyMaxLength     = "detection.max_length"
	keyAutoCopy      = "alerts.auto_copy"
	keyShowPopup     = "alerts.show_popup"
	keyNotifications = "alerts.show_notifications"
	keyPlaySound     = "alerts.play_sound"
)

var settingKeys = []string{
	keyInterval, keyDeltaMode, keyQueryTimeout, keyWatchStore,
	keyMinLength, keyMaxLength,
	keyAutoCopy, keyShowPopup, keyNotifications, keyPlaySound,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validate:    newSettingsValidator(),
	}
}

func newSettingsValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("pollinterval", func(fl validator.FieldLevel) bool {
		return domain.IsPollInterval(time.Duration(fl.Field().Int()))
	})
	return v
}

// Get retrieves current application settings. Missing keys take defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	d := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Monitoring: domain.MonitoringSettings{
			Interval:     s.getSeconds(keyInterval, d.Monitoring.Interval),
			DeltaMode:    s.getDeltaMode(d.Monitoring.DeltaMode),
			QueryTimeout: s.getSeconds(keyQueryTimeout, d.Monitoring.QueryTimeout),
			WatchStore:   s.getBool(keyWatchStore, d.Monitoring.WatchStore),
		},
		Detection: domain.DetectionSettings{
			MinLength: s.getInt(keyMinLength, d.Detection.MinLength),
			MaxLength: s.getInt(keyMaxLength, d.Detection.MaxLength),
		},
		Alerts: domain.AlertSettings{
			AutoCopy:          s.getBool(keyAutoCopy, d.Alerts.AutoCopy),
			ShowPopup:         s.getBool(keyShowPopup, d.Alerts.ShowPopup),
			ShowNotifications: s.getBool(keyNotifications, d.Alerts.ShowNotifications),
			PlaySound:         s.getBool(keyPlaySound, d.Alerts.PlaySound),
		},
	}

	return settings, nil
}

// Validate checks settings against their constraints.
func (s *SettingsService) Validate(settings *domain.AppSettings) error {
	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSettings, err)
	}
	return nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.Validate(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyInterval, settings.Monitoring.Interval.Seconds()},
		{keyDeltaMode, settings.Monitoring.DeltaMode.String()},
		{keyQueryTimeout, settings.Monitoring.QueryTimeout.Seconds()},
		{keyWatchStore, settings.Monitoring.WatchStore},
		{keyMinLength, settings.Detection.MinLength},
		{keyMaxLength, settings.Detection.MaxLength},
		{keyAutoCopy, settings.Alerts.AutoCopy},
		{keyShowPopup, settings.Alerts.ShowPopup},
		{keyNotifications, settings.Alerts.ShowNotifications},
		{keyPlaySound, settings.Alerts.PlaySound},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key, validates the result and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	if err := applySetting(settings, key, value); err != nil {
		return err
	}
	return s.Save(settings)
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

func applySetting(settings *domain.AppSettings, key, value string) error {
	invalid := func(err error) error {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSettings, key, err)
	}

	switch key {
	case keyInterval, keyQueryTimeout:
		secs, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return invalid(err)
		}
		d := secondsToDuration(secs)
		if key == keyInterval {
			settings.Monitoring.Interval = d
		} else {
			settings.Monitoring.QueryTimeout = d
		}
	case keyDeltaMode:
		settings.Monitoring.DeltaMode = domain.DeltaMode(strings.ToLower(value))
	case keyMinLength, keyMaxLength:
		n, err := strconv.Atoi(value)
		if err != nil {
			return invalid(err)
		}
		if key == keyMinLength {
			settings.Detection.MinLength = n
		} else {
			settings.Detection.MaxLength = n
		}
	case keyWatchStore, keyAutoCopy, keyShowPopup, keyNotifications, keyPlaySound:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(err)
		}
		switch key {
		case keyWatchStore:
			settings.Monitoring.WatchStore = b
		case keyAutoCopy:
			settings.Alerts.AutoCopy = b
		case keyShowPopup:
			settings.Alerts.ShowPopup = b
		case keyNotifications:
			settings.Alerts.ShowNotifications = b
		case keyPlaySound:
			settings.Alerts.PlaySound = b
		}
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
	return nil
}

func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	secs := s.configStore.GetFloat(key)
	if secs <= 0 {
		return defaultVal
	}
	return secondsToDuration(secs)
}

func (s *SettingsService) getDeltaMode(defaultVal domain.DeltaMode) domain.DeltaMode {
	mode := domain.DeltaMode(s.configStore.GetString(keyDeltaMode))
	if mode.IsValid() {
		return mode
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
