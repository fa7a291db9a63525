package driving

import "github.com/aidenappl/OneTimePaste/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for the dotted key and persists it.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string
}
