// Package tui provides an interactive terminal user interface for clonegroup.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/clonegroup/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Grouping runs the clustering pipeline.
	Grouping driving.GroupingService

	// Settings supplies clustering parameters. Optional; defaults apply
	// when nil.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Grouping == nil {
		return ErrMissingGroupingService
	}
	return nil
}
