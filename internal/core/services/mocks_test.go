package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// mockCorpusSource serves tiers from memory.
type mockCorpusSource struct {
	mu       sync.Mutex
	tiers    map[string][]domain.Document
	tiersErr error
	loadErrs map[string]error
	loaded   []string
	exts     []string
}

func newMockCorpusSource() *mockCorpusSource {
	return &mockCorpusSource{
		tiers:    make(map[string][]domain.Document),
		loadErrs: make(map[string]error),
	}
}

func (m *mockCorpusSource) addTier(name string, docs ...doc) {
	documents := make([]domain.Document, len(docs))
	for i, d := range docs {
		documents[i] = domain.Document{ID: d.id, URI: filepath.Join(name, d.id), Content: d.content}
	}
	m.tiers[name] = documents
}

func (m *mockCorpusSource) Tiers(_ context.Context, root string) ([]domain.Tier, error) {
	if m.tiersErr != nil {
		return nil, m.tiersErr
	}
	names := make([]string, 0, len(m.tiers))
	for name := range m.tiers {
		names = append(names, name)
	}
	sort.Strings(names)

	tiers := make([]domain.Tier, len(names))
	for i, name := range names {
		tiers[i] = domain.Tier{Name: name, Path: filepath.Join(root, name)}
	}
	return tiers, nil
}

func (m *mockCorpusSource) Tier(_ context.Context, dir string) (domain.Tier, error) {
	if m.tiersErr != nil {
		return domain.Tier{}, m.tiersErr
	}
	name := filepath.Base(dir)
	if _, ok := m.tiers[name]; !ok {
		return domain.Tier{}, domain.ErrRootNotFound
	}
	return domain.Tier{Name: name, Path: dir}, nil
}

func (m *mockCorpusSource) Load(ctx context.Context, tier domain.Tier, extensions []string) (*domain.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.loaded = append(m.loaded, tier.Name)
	m.exts = extensions
	m.mu.Unlock()

	if err := m.loadErrs[tier.Name]; err != nil {
		return nil, err
	}
	corpus := domain.NewCorpus(tier.Name)
	for _, d := range m.tiers[tier.Name] {
		if err := corpus.Add(d); err != nil {
			return nil, fmt.Errorf("add %s: %w", d.ID, err)
		}
	}
	return corpus, nil
}

// mockTreeWatcher hands out a channel the test drives.
type mockTreeWatcher struct {
	changes chan domain.TreeChange
	err     error
}

func (m *mockTreeWatcher) Watch(_ context.Context, _ string) (<-chan domain.TreeChange, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.changes, nil
}
