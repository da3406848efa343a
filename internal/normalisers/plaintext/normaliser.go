// Package plaintext provides the fallback Normaliser for plain text.
// Content passes through unchanged apart from a UTF-8 byte order mark.
package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/csv"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5
}

// Normalise returns the text as-is.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	metadata := make(map[string]any, len(raw.Metadata)+1)
	for k, v := range raw.Metadata {
		metadata[k] = v
	}
	metadata["mime_type"] = raw.MIMEType

	name := filepath.Base(raw.URI)
	title, _ := raw.Metadata["title"].(string)
	if title == "" {
		title = strings.TrimSuffix(name, filepath.Ext(name))
	}

	return &driven.NormaliseResult{
		Document: domain.Document{
			ID:       name,
			URI:      raw.URI,
			Title:    title,
			Content:  strings.TrimPrefix(string(raw.Content), "\ufeff"),
			Metadata: metadata,
		},
	}, nil
}
