package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driven"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driving"
	"github.com/custodia-labs/clonegroup/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// DefaultDebounce is the quiet period before a re-run.
const DefaultDebounce = 500 * time.Millisecond

// ErrWatcherNotConfigured is returned when no tree watcher is wired.
var ErrWatcherNotConfigured = errors.New("tree watcher not configured")

// WatchService re-runs grouping on the whole root after changes settle.
// Every run reprocesses all tiers from scratch.
type WatchService struct {
	grouping driving.GroupingService
	watcher  driven.TreeWatcher
}

// NewWatchService creates a new watch service.
func NewWatchService(grouping driving.GroupingService, watcher driven.TreeWatcher) *WatchService {
	return &WatchService{
		grouping: grouping,
		watcher:  watcher,
	}
}

// Watch runs grouping once and then after each burst of changes.
// Root errors from the first run are returned; later run errors are
// passed to handle. Returns nil when ctx is cancelled.
func (s *WatchService) Watch(
	ctx context.Context,
	root string,
	opts domain.GroupOptions,
	debounce time.Duration,
	handle driving.ReportHandler,
) error {
	if s.grouping == nil {
		return ErrSourceNotConfigured
	}
	if s.watcher == nil {
		return ErrWatcherNotConfigured
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	report, err := s.grouping.GroupRoot(ctx, root, opts)
	if errors.Is(err, domain.ErrRootNotFound) || errors.Is(err, domain.ErrNotADirectory) {
		return err
	}
	handle(report, err)

	changes, err := s.watcher.Watch(ctx, root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("Change %s: %s", change.Type, change.Path)
			if !pending {
				timer.Reset(debounce)
				pending = true
			}
		case <-timer.C:
			pending = false
			report, err := s.grouping.GroupRoot(ctx, root, opts)
			if ctx.Err() != nil {
				return nil
			}
			handle(report, err)
		}
	}
}
