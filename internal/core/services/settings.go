package services

import (
	"fmt"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driven"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyClusterEps        = "cluster.eps"
	keyClusterMinSamples = "cluster.min_samples"
	keyLoaderExtensions  = "loader.extensions"
	keyPipelineWorkers   = "pipeline.workers"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Cluster: domain.ClusterParams{
			Eps:        s.getPositiveFloat(keyClusterEps, defaults.Cluster.Eps),
			MinSamples: s.getPositiveInt(keyClusterMinSamples, defaults.Cluster.MinSamples),
		},
		Loader: domain.LoaderSettings{
			Extensions: s.getExtensions(defaults.Loader.Extensions),
		},
		Pipeline: domain.PipelineSettings{
			Workers: s.getPositiveInt(keyPipelineWorkers, defaults.Pipeline.Workers),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are required", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyClusterEps, settings.Cluster.Eps); err != nil {
		return fmt.Errorf("save cluster eps: %w", err)
	}
	if err := s.configStore.Set(keyClusterMinSamples, settings.Cluster.MinSamples); err != nil {
		return fmt.Errorf("save cluster min_samples: %w", err)
	}
	exts := domain.NormaliseExtensions(settings.Loader.Extensions)
	if err := s.configStore.Set(keyLoaderExtensions, exts); err != nil {
		return fmt.Errorf("save loader extensions: %w", err)
	}
	if err := s.configStore.Set(keyPipelineWorkers, settings.Pipeline.Workers); err != nil {
		return fmt.Errorf("save pipeline workers: %w", err)
	}

	return nil
}

// SetClusterParams updates eps and min_samples.
func (s *SettingsService) SetClusterParams(params domain.ClusterParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Cluster = params
	return s.Save(settings)
}

// SetExtensions updates the eligible file extensions.
func (s *SettingsService) SetExtensions(extensions []string) error {
	exts := domain.NormaliseExtensions(extensions)
	if len(exts) == 0 {
		return fmt.Errorf("%w: at least one file extension is required", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Loader.Extensions = exts
	return s.Save(settings)
}

// SetWorkers updates the number of tiers processed concurrently.
func (s *SettingsService) SetWorkers(workers int) error {
	if workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", domain.ErrInvalidInput, workers)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Pipeline.Workers = workers
	return s.Save(settings)
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns where settings are stored.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods for reading config values with defaults.

func (s *SettingsService) getPositiveFloat(key string, defaultVal float64) float64 {
	if v := s.configStore.GetFloat(key); v > 0 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getExtensions(defaultVal []string) []string {
	if exts := domain.NormaliseExtensions(s.configStore.GetStringSlice(keyLoaderExtensions)); len(exts) > 0 {
		return exts
	}
	return defaultVal
}
