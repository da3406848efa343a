package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// mockGroupingService is a mock implementation of driving.GroupingService.
type mockGroupingService struct {
	report *domain.Report
	tier   *domain.TierResult
	groups []domain.ClusterGroup
	err    error

	lastRoot   string
	lastDir    string
	lastOpts   domain.GroupOptions
	lastParams domain.ClusterParams
	lastCorpus *domain.Corpus
}

func (m *mockGroupingService) GroupRoot(
	_ context.Context,
	root string,
	opts domain.GroupOptions,
) (*domain.Report, error) {
	m.lastRoot = root
	m.lastOpts = opts
	return m.report, m.err
}

func (m *mockGroupingService) GroupTier(
	_ context.Context,
	dir string,
	opts domain.GroupOptions,
) (*domain.TierResult, error) {
	m.lastDir = dir
	m.lastOpts = opts
	return m.tier, m.err
}

func (m *mockGroupingService) GroupCorpus(
	corpus *domain.Corpus,
	params domain.ClusterParams,
) ([]domain.ClusterGroup, error) {
	m.lastCorpus = corpus
	m.lastParams = params
	return m.groups, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	path     string
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) SetClusterParams(_ domain.ClusterParams) error {
	return m.err
}

func (m *mockSettingsService) SetExtensions(_ []string) error {
	return m.err
}

func (m *mockSettingsService) SetWorkers(_ int) error {
	return m.err
}

func (m *mockSettingsService) Validate() error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) ConfigPath() string {
	return m.path
}

func newTestServer(t *testing.T, grouping *mockGroupingService, settings *mockSettingsService) *Server {
	t.Helper()
	ports := &Ports{Grouping: grouping}
	if settings != nil {
		ports.Settings = settings
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}
