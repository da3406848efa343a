package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

func TestNormaliser_Descriptor(t *testing.T) {
	n := New()
	assert.Equal(t, []string{"text/markdown", "text/x-markdown"}, n.SupportedMIMETypes())
	assert.Equal(t, 50, n.Priority())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/root/t/readme.md",
		MIMEType: "text/markdown",
		Content:  []byte("# Project\n\nSome **bold** text with a [link](http://x.y).\n"),
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	doc := result.Document
	assert.Equal(t, "readme.md", doc.ID)
	assert.Equal(t, "Project", doc.Title)
	assert.Equal(t, "Project\n\nSome bold text with a link.", doc.Content)
	assert.Equal(t, "markdown", doc.Metadata["format"])
}

func TestNormalise_NilDocument(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalise_TitleFallback(t *testing.T) {
	result, err := New().Normalise(context.Background(), &domain.RawDocument{
		URI:     "/x/release-notes_v1.md",
		Content: []byte("## Not a title\nbody"),
	})
	require.NoError(t, err)
	assert.Equal(t, "release notes v1", result.Document.Title)
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"headings", "## Section\ntext", "Section\ntext"},
		{"emphasis", "**bold** *it* __u__ ~~gone~~", "bold it u gone"},
		{"links keep text", "see [docs](https://example.com)", "see docs"},
		{"images removed", "![alt](img.png) after", "after"},
		{"fenced code removed", "before\n```go\nfmt.Println()\n```\nafter", "before\n\nafter"},
		{"inline code removed", "run `make` now", "run  now"},
		{"blockquote", "> quoted line", "quoted line"},
		{"lists", "- one\n* two\n+ three\n1. four\n2) five", "one\ntwo\nthree\nfour\nfive"},
		{"horizontal rule", "a\n\n---\n\nb", "a\n\nb"},
		{"snake case survives", "my_variable_name", "my_variable_name"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdown(tt.input))
		})
	}
}
