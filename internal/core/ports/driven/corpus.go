package driven

import (
	"context"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// CorpusSource enumerates tiers under a root and loads their documents.
// The filesystem connector is the only implementation.
type CorpusSource interface {
	// Tiers lists the subdirectories of root in sorted name order.
	// Entries that are not directories are skipped.
	// Returns domain.ErrRootNotFound or domain.ErrNotADirectory when the
	// root itself is unusable.
	Tiers(ctx context.Context, root string) ([]domain.Tier, error)

	// Tier resolves a single directory as a tier named after its base name.
	// Returns the same root errors as Tiers.
	Tier(ctx context.Context, dir string) (domain.Tier, error)

	// Load reads every eligible file directly inside the tier directory,
	// extracts its text and returns the documents in file-name order.
	// A tier without eligible files yields an empty corpus, not an error.
	Load(ctx context.Context, tier domain.Tier, extensions []string) (*domain.Corpus, error)
}

// TreeWatcher reports filesystem changes below a root.
type TreeWatcher interface {
	// Watch starts watching root and its tier directories.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, root string) (<-chan domain.TreeChange, error)
}
