package mcp

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

const settingsURI = "clonegroup://settings"

// settingsView is the JSON shape of the settings resource.
type settingsView struct {
	Eps        float64  `json:"eps"`
	MinSamples int      `json:"min_samples"`
	Extensions []string `json:"extensions"`
	Workers    int      `json:"workers"`
	ConfigPath string   `json:"config_path,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         settingsURI,
		Name:        "settings",
		Description: "Effective clustering parameters and loader settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

func (s *Server) handleSettingsResource(
	_ context.Context,
	_ *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultAppSettings()
	var path string
	if s.ports.Settings != nil {
		stored, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		settings = *stored
		path = s.ports.Settings.ConfigPath()
	}

	view := settingsView{
		Eps:        settings.Cluster.Eps,
		MinSamples: settings.Cluster.MinSamples,
		Extensions: settings.Loader.Extensions,
		Workers:    settings.Pipeline.Workers,
		ConfigPath: path,
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      settingsURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
