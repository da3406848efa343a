package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClusterParams(t *testing.T) {
	p := DefaultClusterParams()

	assert.Equal(t, 0.2, p.Eps)
	assert.Equal(t, 1, p.MinSamples)
	assert.NoError(t, p.Validate())
}

func TestClusterParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  ClusterParams
		wantErr bool
	}{
		{"defaults", ClusterParams{Eps: 0.2, MinSamples: 1}, false},
		{"large eps", ClusterParams{Eps: 5, MinSamples: 3}, false},
		{"zero eps", ClusterParams{Eps: 0, MinSamples: 1}, true},
		{"negative eps", ClusterParams{Eps: -0.1, MinSamples: 1}, true},
		{"zero min samples", ClusterParams{Eps: 0.2, MinSamples: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParams)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClusterParams_WithDefaults(t *testing.T) {
	assert.Equal(t, DefaultClusterParams(), ClusterParams{}.WithDefaults())
	assert.Equal(t, ClusterParams{Eps: 0.5, MinSamples: 1}, ClusterParams{Eps: 0.5}.WithDefaults())
	assert.Equal(t, ClusterParams{Eps: 0.2, MinSamples: 4}, ClusterParams{MinSamples: 4}.WithDefaults())
}

func TestNormaliseExtensions(t *testing.T) {
	got := NormaliseExtensions([]string{"HTML", ".htm", " md ", "", ".", ".html"})

	assert.Equal(t, []string{".html", ".htm", ".md"}, got)
}

func TestGroupOptions_WithDefaults(t *testing.T) {
	opts := GroupOptions{}.WithDefaults()

	assert.Equal(t, DefaultClusterParams(), opts.Params)
	assert.Equal(t, []string{".html"}, opts.Extensions)
	assert.Equal(t, 1, opts.Workers)

	opts = GroupOptions{Extensions: []string{"MD"}, Workers: 4}.WithDefaults()
	assert.Equal(t, []string{".md"}, opts.Extensions)
	assert.Equal(t, 4, opts.Workers)
}

func TestAppSettings_Validate(t *testing.T) {
	s := DefaultAppSettings()
	require.NoError(t, s.Validate())

	s.Loader.Extensions = []string{" "}
	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)

	s = DefaultAppSettings()
	s.Pipeline.Workers = 0
	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)

	s = DefaultAppSettings()
	s.Cluster.Eps = -1
	assert.ErrorIs(t, s.Validate(), ErrInvalidParams)
}

func TestAppSettings_GroupOptions(t *testing.T) {
	s := AppSettings{
		Cluster:  ClusterParams{Eps: 0.35, MinSamples: 2},
		Loader:   LoaderSettings{Extensions: []string{"html", "MD"}},
		Pipeline: PipelineSettings{Workers: 3},
	}

	opts := s.GroupOptions()

	assert.Equal(t, ClusterParams{Eps: 0.35, MinSamples: 2}, opts.Params)
	assert.Equal(t, []string{".html", ".md"}, opts.Extensions)
	assert.Equal(t, 3, opts.Workers)
}
