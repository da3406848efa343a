package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driven"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driving"
	"github.com/custodia-labs/clonegroup/internal/logger"
)

// Ensure GroupingService implements the interface.
var _ driving.GroupingService = (*GroupingService)(nil)

// ErrSourceNotConfigured is returned when no corpus source is wired.
var ErrSourceNotConfigured = errors.New("corpus source not configured")

// GroupingService runs the vectorize, similarity and group stages over
// every tier of a root directory.
type GroupingService struct {
	source driven.CorpusSource
	now    func() time.Time
}

// NewGroupingService creates a new grouping service.
func NewGroupingService(source driven.CorpusSource) *GroupingService {
	return &GroupingService{
		source: source,
		now:    time.Now,
	}
}

// GroupRoot processes every tier under root in sorted name order.
//
// With opts.Workers > 1 tiers run concurrently; each result is written
// to its tier's slot so the report matches a sequential run.
func (s *GroupingService) GroupRoot(
	ctx context.Context,
	root string,
	opts domain.GroupOptions,
) (*domain.Report, error) {
	if s.source == nil {
		return nil, ErrSourceNotConfigured
	}
	opts = opts.WithDefaults()
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}

	started := s.now()
	logger.Section("Grouping")
	logger.Debug("Root: %s", root)
	logger.Debug("Params: eps=%v min_samples=%d workers=%d extensions=%v",
		opts.Params.Eps, opts.Params.MinSamples, opts.Workers, opts.Extensions)

	tiers, err := s.source.Tiers(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	logger.Debug("Found %d tiers", len(tiers))

	results := make([]domain.TierResult, len(tiers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, tier := range tiers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.groupTier(gctx, tier, opts)
			if err != nil {
				return fmt.Errorf("tier %s: %w", tier.Name, err)
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.Report{
		RunID:     uuid.NewString(),
		Root:      root,
		Params:    opts.Params,
		StartedAt: started,
		Duration:  s.now().Sub(started),
		Tiers:     results,
	}
	logger.Info("Grouped %d documents across %d tiers", report.TotalDocuments(), len(results))
	return report, nil
}

// GroupTier processes dir itself as a single tier.
func (s *GroupingService) GroupTier(
	ctx context.Context,
	dir string,
	opts domain.GroupOptions,
) (*domain.TierResult, error) {
	if s.source == nil {
		return nil, ErrSourceNotConfigured
	}
	opts = opts.WithDefaults()
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}

	tier, err := s.source.Tier(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("resolve tier: %w", err)
	}
	return s.groupTier(ctx, tier, opts)
}

// GroupCorpus runs the three core stages on an in-memory corpus.
func (s *GroupingService) GroupCorpus(
	corpus *domain.Corpus,
	params domain.ClusterParams,
) ([]domain.ClusterGroup, error) {
	params = params.WithDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	matrix := Vectorize(corpus)
	if matrix == nil {
		return []domain.ClusterGroup{}, nil
	}
	logger.Debug("Vocabulary: %d terms over %d documents", matrix.NumTerms(), matrix.NumDocuments())

	return Group(corpus, Similarity(matrix), params)
}

func (s *GroupingService) groupTier(
	ctx context.Context,
	tier domain.Tier,
	opts domain.GroupOptions,
) (*domain.TierResult, error) {
	corpus, err := s.source.Load(ctx, tier, opts.Extensions)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	groups, err := s.GroupCorpus(corpus, opts.Params)
	if err != nil {
		return nil, err
	}

	logger.Tier(tier.Name, corpus.Len(), len(groups))
	return &domain.TierResult{
		Tier:      tier.Name,
		Documents: corpus.Len(),
		Groups:    groups,
	}, nil
}
