package mcp

import (
	"github.com/custodia-labs/clonegroup/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Grouping runs the clustering pipeline.
	Grouping driving.GroupingService

	// Settings supplies default parameters. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Grouping == nil {
		return ErrMissingGroupingService
	}
	return nil
}
