package domain

import (
	"fmt"
	"strings"
)

// Default tunables.
const (
	// DefaultEps is the density radius on the distance scale.
	DefaultEps = 0.2

	// DefaultMinSamples makes every document a core point, so none is noise.
	DefaultMinSamples = 1

	// DefaultWorkers processes tiers sequentially.
	DefaultWorkers = 1
)

// DefaultExtensions returns the file extensions eligible by default.
func DefaultExtensions() []string {
	return []string{".html"}
}

// ClusterParams holds the density-based clustering parameters.
type ClusterParams struct {
	// Eps is the maximum distance for two documents to be neighbours.
	Eps float64 `json:"eps" yaml:"eps"`

	// MinSamples is the neighbourhood size (including the point itself)
	// needed for a point to seed a cluster.
	MinSamples int `json:"min_samples" yaml:"min_samples"`
}

// DefaultClusterParams returns eps=0.2, min_samples=1.
func DefaultClusterParams() ClusterParams {
	return ClusterParams{
		Eps:        DefaultEps,
		MinSamples: DefaultMinSamples,
	}
}

// Validate checks parameters are usable.
func (p ClusterParams) Validate() error {
	if p.Eps <= 0 {
		return fmt.Errorf("%w: eps must be positive, got %v", ErrInvalidParams, p.Eps)
	}
	if p.MinSamples < 1 {
		return fmt.Errorf("%w: min_samples must be at least 1, got %d", ErrInvalidParams, p.MinSamples)
	}
	return nil
}

// WithDefaults fills unset (zero) fields with defaults.
func (p ClusterParams) WithDefaults() ClusterParams {
	if p.Eps == 0 {
		p.Eps = DefaultEps
	}
	if p.MinSamples == 0 {
		p.MinSamples = DefaultMinSamples
	}
	return p
}

// GroupOptions controls one orchestrated run.
type GroupOptions struct {
	// Params are the clustering parameters.
	Params ClusterParams

	// Extensions are the eligible file extensions, lower-case with dot.
	Extensions []string

	// Workers is the number of tiers processed concurrently.
	Workers int
}

// WithDefaults fills unset fields with defaults.
func (o GroupOptions) WithDefaults() GroupOptions {
	o.Params = o.Params.WithDefaults()
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions()
	} else {
		o.Extensions = NormaliseExtensions(o.Extensions)
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	return o
}

// NormaliseExtensions lower-cases extensions, adds a leading dot and
// drops blanks and duplicates while keeping order.
func NormaliseExtensions(exts []string) []string {
	seen := make(map[string]bool, len(exts))
	result := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		result = append(result, ext)
	}
	return result
}

// LoaderSettings configures which files count as documents.
type LoaderSettings struct {
	// Extensions are the eligible file extensions.
	Extensions []string
}

// PipelineSettings configures run-level behaviour.
type PipelineSettings struct {
	// Workers is the number of tiers processed concurrently.
	Workers int
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Cluster  ClusterParams
	Loader   LoaderSettings
	Pipeline PipelineSettings
}

// DefaultAppSettings returns settings with all defaults applied.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Cluster:  DefaultClusterParams(),
		Loader:   LoaderSettings{Extensions: DefaultExtensions()},
		Pipeline: PipelineSettings{Workers: DefaultWorkers},
	}
}

// Validate checks every section.
func (s AppSettings) Validate() error {
	if err := s.Cluster.Validate(); err != nil {
		return err
	}
	if len(NormaliseExtensions(s.Loader.Extensions)) == 0 {
		return fmt.Errorf("%w: at least one file extension is required", ErrInvalidInput)
	}
	if s.Pipeline.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidInput, s.Pipeline.Workers)
	}
	return nil
}

// GroupOptions converts settings into run options.
func (s AppSettings) GroupOptions() GroupOptions {
	return GroupOptions{
		Params:     s.Cluster,
		Extensions: NormaliseExtensions(s.Loader.Extensions),
		Workers:    s.Pipeline.Workers,
	}.WithDefaults()
}
