package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driven"
	"github.com/custodia-labs/clonegroup/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// Source reads tiers and their documents from the local filesystem.
type Source struct {
	registry driven.NormaliserRegistry
}

// NewSource creates a corpus source that extracts text with registry.
func NewSource(registry driven.NormaliserRegistry) *Source {
	return &Source{registry: registry}
}

// Tiers lists every subdirectory of root, dot-named ones included,
// sorted by name.
func (s *Source) Tiers(ctx context.Context, root string) ([]domain.Tier, error) {
	if err := checkDir(root); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root %s: %w", root, err)
	}

	var tiers []domain.Tier
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(root, entry.Name())
		if !isDir(path, entry) {
			logger.Debug("Skipping non-directory %s", path)
			continue
		}
		tiers = append(tiers, domain.Tier{Name: entry.Name(), Path: path})
	}

	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Name < tiers[j].Name })
	return tiers, nil
}

// Tier resolves dir as a single tier.
func (s *Source) Tier(_ context.Context, dir string) (domain.Tier, error) {
	if err := checkDir(dir); err != nil {
		return domain.Tier{}, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return domain.Tier{Name: filepath.Base(abs), Path: dir}, nil
}

// Load reads every eligible file directly inside the tier directory in
// file-name order and extracts its text.
func (s *Source) Load(ctx context.Context, tier domain.Tier, extensions []string) (*domain.Corpus, error) {
	if s.registry == nil {
		return nil, errors.New("normaliser registry not configured")
	}
	exts := domain.NormaliseExtensions(extensions)
	if len(exts) == 0 {
		exts = domain.DefaultExtensions()
	}

	entries, err := os.ReadDir(tier.Path)
	if err != nil {
		return nil, fmt.Errorf("read tier %s: %w", tier.Name, err)
	}

	corpus := domain.NewCorpus(tier.Name)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if !hasExtension(name, exts) {
			continue
		}
		path := filepath.Join(tier.Path, name)
		if isDir(path, entry) {
			continue
		}

		doc, err := s.readDocument(ctx, tier, path)
		if err != nil {
			return nil, err
		}
		if err := corpus.Add(doc); err != nil {
			return nil, fmt.Errorf("tier %s: %w", tier.Name, err)
		}
	}

	logger.Debug("Loaded %d documents from %s", corpus.Len(), tier.Path)
	return corpus, nil
}

func (s *Source) readDocument(ctx context.Context, tier domain.Tier, path string) (domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("stat %s: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	raw := &domain.RawDocument{
		Tier:     tier.Name,
		URI:      path,
		MIMEType: detectMIMEType(path),
		Content:  content,
		Metadata: map[string]any{
			"size":     info.Size(),
			"modified": info.ModTime(),
		},
	}

	result, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return domain.Document{}, fmt.Errorf("extract %s: %w", path, err)
	}

	doc := result.Document
	doc.ID = filepath.Base(path)
	doc.URI = path
	return doc, nil
}

// checkDir maps a missing or non-directory path to the root sentinels.
func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, domain.ErrRootNotFound)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, domain.ErrNotADirectory)
	}
	return nil
}

// isDir follows symlinks, which DirEntry does not.
func isDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
