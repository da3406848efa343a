package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// GroupInput is the input schema for the group_documents tool.
type GroupInput struct {
	Root       string   `json:"root" jsonschema:"directory whose subdirectories are the tiers to group"`
	Eps        float64  `json:"eps,omitempty" jsonschema:"maximum cosine distance between neighbours (default from settings, 0.2)"`
	MinSamples int      `json:"min_samples,omitempty" jsonschema:"neighbourhood size needed to seed a group (default 1)"`
	Extensions []string `json:"extensions,omitempty" jsonschema:"file extensions to read, e.g. .html"`
	Workers    int      `json:"workers,omitempty" jsonschema:"number of tiers processed concurrently"`
}

// GroupOutput is the output schema for the group_documents tool.
type GroupOutput struct {
	RunID      string       `json:"run_id"`
	Root       string       `json:"root"`
	Eps        float64      `json:"eps"`
	MinSamples int          `json:"min_samples"`
	DurationMS int64        `json:"duration_ms"`
	Tiers      []TierOutput `json:"tiers"`
}

// TierInput is the input schema for the group_tier tool.
type TierInput struct {
	Dir        string   `json:"dir" jsonschema:"directory grouped as a single tier"`
	Eps        float64  `json:"eps,omitempty" jsonschema:"maximum cosine distance between neighbours"`
	MinSamples int      `json:"min_samples,omitempty" jsonschema:"neighbourhood size needed to seed a group"`
	Extensions []string `json:"extensions,omitempty" jsonschema:"file extensions to read"`
}

// TierOutput is one tier's groups.
type TierOutput struct {
	Tier      string     `json:"tier"`
	Documents int        `json:"document_count"`
	Groups    [][]string `json:"groups"`
}

// TextDocument is an in-memory document for group_texts.
type TextDocument struct {
	ID   string `json:"id" jsonschema:"unique identifier of the document"`
	Text string `json:"text" jsonschema:"plain text content"`
}

// TextsInput is the input schema for the group_texts tool.
type TextsInput struct {
	Documents  []TextDocument `json:"documents" jsonschema:"documents to group, in order"`
	Eps        float64        `json:"eps,omitempty" jsonschema:"maximum cosine distance between neighbours"`
	MinSamples int            `json:"min_samples,omitempty" jsonschema:"neighbourhood size needed to seed a group"`
}

// TextsOutput is the output schema for the group_texts tool.
type TextsOutput struct {
	Groups [][]string `json:"groups"`
	Count  int        `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "group_documents",
		Description: "Group near-duplicate markup documents in every tier (subdirectory) of a root directory",
	}, s.handleGroupDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "group_tier",
		Description: "Group near-duplicate markup documents in a single directory",
	}, s.handleGroupTier)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "group_texts",
		Description: "Group near-duplicate plain texts supplied inline",
	}, s.handleGroupTexts)
}

func (s *Server) handleGroupDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GroupInput,
) (*mcp.CallToolResult, GroupOutput, error) {
	if input.Root == "" {
		return nil, GroupOutput{}, fmt.Errorf("%w: root is required", domain.ErrInvalidInput)
	}

	opts := s.options(input.Eps, input.MinSamples, input.Extensions, input.Workers)
	report, err := s.ports.Grouping.GroupRoot(ctx, input.Root, opts)
	if err != nil {
		return nil, GroupOutput{}, err
	}

	output := GroupOutput{
		RunID:      report.RunID,
		Root:       report.Root,
		Eps:        report.Params.Eps,
		MinSamples: report.Params.MinSamples,
		DurationMS: report.Duration.Milliseconds(),
		Tiers:      make([]TierOutput, len(report.Tiers)),
	}
	for i := range report.Tiers {
		output.Tiers[i] = tierOutput(&report.Tiers[i])
	}
	return nil, output, nil
}

func (s *Server) handleGroupTier(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TierInput,
) (*mcp.CallToolResult, TierOutput, error) {
	if input.Dir == "" {
		return nil, TierOutput{}, fmt.Errorf("%w: dir is required", domain.ErrInvalidInput)
	}

	opts := s.options(input.Eps, input.MinSamples, input.Extensions, 0)
	result, err := s.ports.Grouping.GroupTier(ctx, input.Dir, opts)
	if err != nil {
		return nil, TierOutput{}, err
	}
	return nil, tierOutput(result), nil
}

func (s *Server) handleGroupTexts(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextsInput,
) (*mcp.CallToolResult, TextsOutput, error) {
	corpus := domain.NewCorpus("inline")
	for _, d := range input.Documents {
		if err := corpus.Add(domain.Document{ID: d.ID, Content: d.Text}); err != nil {
			return nil, TextsOutput{}, err
		}
	}

	params := s.options(input.Eps, input.MinSamples, nil, 0).Params
	groups, err := s.ports.Grouping.GroupCorpus(corpus, params)
	if err != nil {
		return nil, TextsOutput{}, err
	}

	output := TextsOutput{Groups: groupIDs(groups), Count: len(groups)}
	return nil, output, nil
}

// options starts from stored settings and applies explicit overrides.
func (s *Server) options(eps float64, minSamples int, exts []string, workers int) domain.GroupOptions {
	opts := domain.DefaultAppSettings().GroupOptions()
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil {
			opts = settings.GroupOptions()
		}
	}

	if eps != 0 {
		opts.Params.Eps = eps
	}
	if minSamples != 0 {
		opts.Params.MinSamples = minSamples
	}
	if len(exts) > 0 {
		opts.Extensions = domain.NormaliseExtensions(exts)
	}
	if workers > 0 {
		opts.Workers = workers
	}
	return opts
}

func tierOutput(r *domain.TierResult) TierOutput {
	return TierOutput{
		Tier:      r.Tier,
		Documents: r.Documents,
		Groups:    groupIDs(r.Groups),
	}
}

func groupIDs(groups []domain.ClusterGroup) [][]string {
	ids := make([][]string, len(groups))
	for i, g := range groups {
		ids[i] = g.DocumentIDs
	}
	return ids
}
