package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
	"github.com/custodia-labs/clonegroup/internal/core/ports/driven"
)

func TestNormaliser_Descriptor(t *testing.T) {
	n := New()
	assert.Equal(t, []string{"text/html", "application/xhtml+xml"}, n.SupportedMIMETypes())
	assert.Equal(t, 50, n.Priority())

	var _ driven.Normaliser = n
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawDocument{
		Tier:     "tier1",
		URI:      "/root/tier1/page.html",
		MIMEType: "text/html",
		Content:  []byte("<html><head><title>Test Page</title></head><body><p>Hello World</p></body></html>"),
		Metadata: map[string]any{"size": int64(88)},
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	doc := result.Document
	assert.Equal(t, "page.html", doc.ID)
	assert.Equal(t, raw.URI, doc.URI)
	assert.Equal(t, "Test Page", doc.Title)
	assert.Equal(t, "Test Page\nHello World", doc.Content)
	assert.Equal(t, int64(88), doc.Metadata["size"])
	assert.Equal(t, "text/html", doc.Metadata["mime_type"])
	assert.Equal(t, "html", doc.Metadata["format"])

	// input metadata is not mutated
	assert.NotContains(t, raw.Metadata, "format")
}

func TestNormalise_NilDocument(t *testing.T) {
	result, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestNormalise_EmptyContent(t *testing.T) {
	result, err := New().Normalise(context.Background(), &domain.RawDocument{URI: "/x/empty_page.html"})
	require.NoError(t, err)
	assert.Empty(t, result.Document.Content)
	assert.Equal(t, "empty page", result.Document.Title)
}

func TestNormalise_Title(t *testing.T) {
	tests := []struct {
		name    string
		content string
		uri     string
		want    string
	}{
		{"title tag", "<title>My Document</title>", "/doc.html", "My Document"},
		{"extra spaces", "<title>   Spaced \n Title   </title>", "/doc.html", "Spaced Title"},
		{"entities", "<title>Tom &amp; Jerry</title>", "/doc.html", "Tom & Jerry"},
		{"filename fallback", "<body>Just content</body>", "/my-doc_v2.html", "my doc v2"},
		{"empty title falls back", "<title>  </title>", "/index.html", "index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().Normalise(context.Background(), &domain.RawDocument{
				URI:     tt.uri,
				Content: []byte(tt.content),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Document.Title)
		})
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "just text", "just text"},
		{"paragraphs", "<p>one</p><p>two</p>", "one\ntwo"},
		{"inline tags", "a <b>bold</b> and <i>italic</i> word", "a bold and italic word"},
		{"script removed", "<p>keep</p><script>var x = 1;</script>", "keep"},
		{"style removed", "<style>p { color: red }</style><p>keep</p>", "keep"},
		{"noscript removed", "<noscript>enable js</noscript>text", "text"},
		{"comments removed", "a<!-- hidden -->b", "ab"},
		{"head removed", "<head><meta charset=utf-8><title>T</title></head><body>B</body>", "B"},
		{"svg removed", "<svg><text>chart</text></svg>caption", "caption"},
		{"br and hr", "one<br>two<br/>three<hr />four", "one\ntwo\nthree\nfour"},
		{"entities decoded", "fish &amp; chips &lt;3", "fish & chips <3"},
		{"nbsp collapsed", "a&nbsp;&nbsp;b", "a b"},
		{"whitespace collapsed", "<div>  lots   of \t space  </div>", "lots of space"},
		{"blank lines dropped", "<div>\n\n\n</div><p>x</p>\n\n\n<p>y</p>", "x\ny"},
		{"uppercase tags", "<P>Upper</P><SCRIPT>x()</SCRIPT>", "Upper"},
		{"bare less-than kept", "<p>if a < b then stop</p><span>keep this</span><p>tail</p>", "if a < b then stop\nkeep this\ntail"},
		{"bare less-than across lines", "x <= 3\ny > 2", "x <= 3\ny > 2"},
		{"doctype and processing tags", "<!DOCTYPE html><?xml version=\"1.0\"?>body", "body"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}

func TestNormalise_SameBodyDifferentMarkup(t *testing.T) {
	a := []byte(`<div class="a"><p>The cat sat on the mat</p></div>`)
	b := []byte(`<section id="b"><p style="x">The   cat sat on the <em>mat</em></p></section>`)

	ra, err := New().Normalise(context.Background(), &domain.RawDocument{URI: "a.html", Content: a})
	require.NoError(t, err)
	rb, err := New().Normalise(context.Background(), &domain.RawDocument{URI: "b.html", Content: b})
	require.NoError(t, err)

	assert.Equal(t, ra.Document.Content, rb.Document.Content)
}
