package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// ReportHandler receives the outcome of each run in watch mode.
type ReportHandler func(report *domain.Report, err error)

// WatchService re-runs grouping whenever the watched tree changes.
type WatchService interface {
	// Watch runs grouping once, then again after every burst of changes
	// settles for the debounce window. Blocks until ctx is cancelled.
	Watch(
		ctx context.Context,
		root string,
		opts domain.GroupOptions,
		debounce time.Duration,
		handle ReportHandler,
	) error
}
