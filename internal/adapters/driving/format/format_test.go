package format

import (
	"bytes"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		RunID:     "run-1",
		Root:      "/data",
		Params:    domain.DefaultClusterParams(),
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:  time.Second,
		Tiers: []domain.TierResult{
			{
				Tier:      "tier1",
				Documents: 3,
				Groups: []domain.ClusterGroup{
					{Label: 0, DocumentIDs: []string{"a.html", "b.html"}},
					{Label: domain.NoiseLabel, DocumentIDs: []string{"c.html"}},
				},
			},
			{Tier: "tier2"},
		},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"text", Text, false},
		{"JSON", JSON, false},
		{" yaml ", YAML, false},
		{"", Text, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Processing tier1...")
	assert.Contains(t, out, "Grouped Similar Documents in tier1:")
	assert.Contains(t, out, "Group 1:  [a.html, b.html]")
	assert.Contains(t, out, "Group 2:  [c.html]")
	assert.Contains(t, out, "Grouped Similar Documents in tier2:")
	assert.Equal(t, 2, strings.Count(out, strings.Repeat("-", 50)+"\n"))
	assert.Less(t, strings.Index(out, "tier1"), strings.Index(out, "tier2"))
}

func TestWriteText_NilReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	tiers, ok := decoded["tiers"].([]any)
	require.True(t, ok)
	assert.Len(t, tiers, 2)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleReport()))

	var decoded struct {
		RunID string `yaml:"run_id"`
		Tiers []struct {
			Tier   string `yaml:"tier"`
			Groups []struct {
				Documents []string `yaml:"documents"`
			} `yaml:"groups"`
		} `yaml:"tiers"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Tiers, 2)
	assert.Equal(t, []string{"a.html", "b.html"}, decoded.Tiers[0].Groups[0].Documents)
}

func TestWrite_Dispatch(t *testing.T) {
	var text, js bytes.Buffer
	require.NoError(t, Write(&text, sampleReport(), Text))
	require.NoError(t, Write(&js, sampleReport(), JSON))
	assert.Contains(t, text.String(), "Group 1:")
	assert.True(t, strings.HasPrefix(js.String(), "{"))

	err := Write(&bytes.Buffer{}, sampleReport(), Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
