package driving

import "github.com/custodia-labs/clonegroup/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetClusterParams updates eps and min_samples.
	SetClusterParams(params domain.ClusterParams) error

	// SetExtensions updates the eligible file extensions.
	SetExtensions(extensions []string) error

	// SetWorkers updates the number of tiers processed concurrently.
	SetWorkers(workers int) error

	// Validate checks if current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are stored.
	ConfigPath() string
}
