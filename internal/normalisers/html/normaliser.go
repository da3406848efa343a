package html

import (
	"context"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise extracts the visible text of an HTML page.
// The page title, when present, is kept as the first line of Content.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	markup := string(raw.Content)
	title := extractTitle(markup)
	content := StripHTML(markup)
	if title != "" {
		content = strings.TrimSpace(title + "\n" + content)
	}

	metadata := make(map[string]any, len(raw.Metadata)+2)
	for k, v := range raw.Metadata {
		metadata[k] = v
	}
	metadata["mime_type"] = raw.MIMEType
	metadata["format"] = "html"

	if title == "" {
		title = titleFromPath(raw.URI)
	}

	return &driven.NormaliseResult{
		Document: domain.Document{
			ID:       filepath.Base(raw.URI),
			URI:      raw.URI,
			Title:    title,
			Content:  content,
			Metadata: metadata,
		},
	}, nil
}

type rule struct {
	pattern *regexp.Regexp
	repl    string
}

// Applied in order. Invisible elements go first so their text never
// reaches the tag stripper.
var stripRules = []rule{
	{regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`), ""},
	{regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`), ""},
	{regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`), ""},
	{regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`), ""},
	{regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`), ""},
	{regexp.MustCompile(`(?s)<!--.*?-->`), ""},
	{regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|td|th|blockquote|pre|table|section|article)[^>]*>`), "\n"},
	{regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)>`), "\n"},
	{regexp.MustCompile(`(?i)<(br|hr)\s*/?>`), "\n"},
	{regexp.MustCompile(`<[a-zA-Z/!?][^>]*>`), ""},
}

var (
	titleTag    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	multiSpaces = regexp.MustCompile(`[ \t\r\f\v\x{00a0}]+`)
)

// StripHTML reduces markup to visible text, one non-empty line per block.
func StripHTML(markup string) string {
	for _, r := range stripRules {
		markup = r.pattern.ReplaceAllString(markup, r.repl)
	}
	markup = html.UnescapeString(markup)
	markup = multiSpaces.ReplaceAllString(markup, " ")

	lines := strings.Split(markup, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// extractTitle returns the decoded <title> text, or "".
func extractTitle(markup string) string {
	m := titleTag.FindStringSubmatch(markup)
	if len(m) < 2 {
		return ""
	}
	title := html.UnescapeString(collapseSpace(m[1]))
	return strings.TrimSpace(title)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// titleFromPath turns "my_page-v2.html" into "my page v2".
func titleFromPath(uri string) string {
	name := filepath.Base(uri)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}
