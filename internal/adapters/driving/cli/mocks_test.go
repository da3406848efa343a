package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driving"
)

// mockGroupingService records the last call and returns canned results.
type mockGroupingService struct {
	report *domain.Report
	tier   *domain.TierResult
	err    error

	lastRoot string
	lastDir  string
	lastOpts domain.GroupOptions
}

func (m *mockGroupingService) GroupRoot(_ context.Context, root string, opts domain.GroupOptions) (*domain.Report, error) {
	m.lastRoot = root
	m.lastOpts = opts
	return m.report, m.err
}

func (m *mockGroupingService) GroupTier(_ context.Context, dir string, opts domain.GroupOptions) (*domain.TierResult, error) {
	m.lastDir = dir
	m.lastOpts = opts
	return m.tier, m.err
}

func (m *mockGroupingService) GroupCorpus(_ *domain.Corpus, _ domain.ClusterParams) ([]domain.ClusterGroup, error) {
	return nil, m.err
}

// mockSettingsService keeps settings in memory.
type mockSettingsService struct {
	settings    domain.AppSettings
	err         error
	validateErr error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultAppSettings()}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return m.err
}

func (m *mockSettingsService) SetClusterParams(params domain.ClusterParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	m.settings.Cluster = params
	return m.err
}

func (m *mockSettingsService) SetExtensions(extensions []string) error {
	m.settings.Loader.Extensions = domain.NormaliseExtensions(extensions)
	return m.err
}

func (m *mockSettingsService) SetWorkers(workers int) error {
	m.settings.Pipeline.Workers = workers
	return m.err
}

func (m *mockSettingsService) Validate() error {
	return m.validateErr
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) ConfigPath() string {
	return "/tmp/clonegroup/config.toml"
}

// mockWatchService delivers the configured reports then returns.
type mockWatchService struct {
	reports []*domain.Report
	errs    []error
	err     error

	lastRoot     string
	lastDebounce time.Duration
}

func (m *mockWatchService) Watch(
	_ context.Context,
	root string,
	_ domain.GroupOptions,
	debounce time.Duration,
	handle driving.ReportHandler,
) error {
	m.lastRoot = root
	m.lastDebounce = debounce
	for _, r := range m.reports {
		handle(r, nil)
	}
	for _, e := range m.errs {
		handle(nil, e)
	}
	return m.err
}

func sampleReport() *domain.Report {
	return &domain.Report{
		RunID:  "run-1",
		Root:   "/data",
		Params: domain.DefaultClusterParams(),
		Tiers: []domain.TierResult{
			{
				Tier:      "tier1",
				Documents: 3,
				Groups: []domain.ClusterGroup{
					{Label: 0, DocumentIDs: []string{"a.html", "b.html"}},
					{Label: domain.NoiseLabel, DocumentIDs: []string{"c.html"}},
				},
			},
		},
	}
}

type testServices struct {
	grouping *mockGroupingService
	settings *mockSettingsService
	watch    *mockWatchService
}

// setupTestServices installs fresh mocks and resets flag state left over
// from earlier executions of the shared command tree.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		grouping: &mockGroupingService{report: sampleReport(), tier: &sampleReport().Tiers[0]},
		settings: newMockSettingsService(),
		watch:    &mockWatchService{},
	}

	prevFactory := serviceFactory
	serviceFactory = nil
	resetFlags(rootCmd)
	SetServices(Services{Grouping: ts.grouping, Settings: ts.settings, Watch: ts.watch})

	return ts, func() {
		SetServices(Services{})
		serviceFactory = prevFactory
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
	}
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var defaults []string
			if trimmed := f.DefValue[1 : len(f.DefValue)-1]; trimmed != "" {
				defaults = strings.Split(trimmed, ",")
			}
			_ = sv.Replace(defaults)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
