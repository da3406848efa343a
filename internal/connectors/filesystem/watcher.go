package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driven"
	"github.com/custodia-labs/clonegroup/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.TreeWatcher = (*Watcher)(nil)

// Watcher reports changes to a root and its tier directories.
type Watcher struct{}

// NewWatcher creates a filesystem tree watcher.
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Watch starts watching root and every tier directory under it.
// Tier directories created later are picked up automatically. The
// returned channel is closed when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, root string) (<-chan domain.TreeChange, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := addTierDirs(fsw, root); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("add watch dirs: %w", err)
	}

	changes := make(chan domain.TreeChange)
	go func() {
		defer close(changes)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				change, ok := handleFsEvent(root, event)
				if !ok {
					continue
				}
				if change.Type == domain.ChangeCreated && filepath.Dir(event.Name) == filepath.Clean(root) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := fsw.Add(event.Name); err != nil {
							logger.Warn("Cannot watch new tier %s: %v", event.Name, err)
						}
					}
				}
				select {
				case changes <- change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error: %v", err)
			}
		}
	}()

	return changes, nil
}

// addTierDirs watches root and its direct subdirectories.
func addTierDirs(fsw *fsnotify.Watcher, root string) error {
	if err := fsw.Add(root); err != nil {
		return err
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if !isDir(path, entry) {
			continue
		}
		if err := fsw.Add(path); err != nil {
			return err
		}
	}
	return nil
}

// handleFsEvent maps an fsnotify event to a tree change.
// Chmod-only events and paths outside root are dropped.
func handleFsEvent(root string, event fsnotify.Event) (domain.TreeChange, bool) {
	rel, err := filepath.Rel(root, event.Name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return domain.TreeChange{}, false
	}

	var changeType domain.ChangeType
	switch {
	case event.Op.Has(fsnotify.Create):
		changeType = domain.ChangeCreated
	case event.Op.Has(fsnotify.Write):
		changeType = domain.ChangeUpdated
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		changeType = domain.ChangeDeleted
	default:
		return domain.TreeChange{}, false
	}

	return domain.TreeChange{Type: changeType, Path: event.Name}, true
}
