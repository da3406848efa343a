package driving

import (
	"context"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// GroupingService groups near-duplicate documents.
type GroupingService interface {
	// GroupRoot processes every tier under root in sorted name order.
	// Input errors on root are returned before any tier is processed.
	GroupRoot(ctx context.Context, root string, opts domain.GroupOptions) (*domain.Report, error)

	// GroupTier processes a single directory as one tier.
	GroupTier(ctx context.Context, dir string, opts domain.GroupOptions) (*domain.TierResult, error)

	// GroupCorpus runs vectorisation, similarity and clustering on an
	// in-memory corpus.
	GroupCorpus(corpus *domain.Corpus, params domain.ClusterParams) ([]domain.ClusterGroup, error)
}
