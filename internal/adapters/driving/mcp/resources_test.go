package mcp

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

func TestHandleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults without settings service", func(t *testing.T) {
		server := newTestServer(t, &mockGroupingService{}, nil)

		result, err := server.handleSettingsResource(ctx, nil)
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, settingsURI, result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var view settingsView
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &view))
		assert.Equal(t, domain.DefaultEps, view.Eps)
		assert.Equal(t, domain.DefaultMinSamples, view.MinSamples)
		assert.Equal(t, []string{".html"}, view.Extensions)
		assert.Empty(t, view.ConfigPath)
	})

	t.Run("stored settings", func(t *testing.T) {
		settings := &mockSettingsService{
			settings: &domain.AppSettings{
				Cluster:  domain.ClusterParams{Eps: 0.35, MinSamples: 2},
				Loader:   domain.LoaderSettings{Extensions: []string{".md"}},
				Pipeline: domain.PipelineSettings{Workers: 8},
			},
			path: "/home/user/.clonegroup/config.toml",
		}
		server := newTestServer(t, &mockGroupingService{}, settings)

		result, err := server.handleSettingsResource(ctx, nil)
		require.NoError(t, err)

		var view settingsView
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &view))
		assert.Equal(t, 0.35, view.Eps)
		assert.Equal(t, 2, view.MinSamples)
		assert.Equal(t, []string{".md"}, view.Extensions)
		assert.Equal(t, 8, view.Workers)
		assert.Equal(t, "/home/user/.clonegroup/config.toml", view.ConfigPath)
	})

	t.Run("settings error", func(t *testing.T) {
		settings := &mockSettingsService{err: errors.New("unreadable")}
		server := newTestServer(t, &mockGroupingService{}, settings)

		_, err := server.handleSettingsResource(ctx, nil)
		assert.Error(t, err)
	})
}
