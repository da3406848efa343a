package domain

import "fmt"

// Document represents a markup file reduced to its visible text.
// It is immutable once added to a Corpus.
type Document struct {
	// ID identifies the document within its tier (the file name).
	ID string

	// URI is the original location on disk.
	URI string

	// Title is the human-readable title, when the markup carries one.
	Title string

	// Content is the extracted plain text. May be empty.
	Content string

	// Metadata contains normaliser-specific key-value pairs.
	Metadata map[string]any
}

// Corpus is the ordered set of documents belonging to one tier.
// Row i of every matrix built from a corpus corresponds to Documents[i].
type Corpus struct {
	// Tier is the name of the subdirectory the documents came from.
	Tier string

	// Documents are held in insertion order.
	Documents []Document

	index map[string]int
}

// NewCorpus creates an empty corpus for the named tier.
func NewCorpus(tier string) *Corpus {
	return &Corpus{
		Tier:  tier,
		index: make(map[string]int),
	}
}

// Add appends a document. Identifiers must be unique within the corpus.
func (c *Corpus) Add(doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("%w: document without identifier", ErrInvalidInput)
	}
	if c.index == nil {
		c.rebuildIndex()
	}
	if _, ok := c.index[doc.ID]; ok {
		return fmt.Errorf("document %q: %w", doc.ID, ErrAlreadyExists)
	}
	c.index[doc.ID] = len(c.Documents)
	c.Documents = append(c.Documents, doc)
	return nil
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Documents)
}

// IsEmpty reports whether the corpus holds no documents.
func (c *Corpus) IsEmpty() bool {
	return c.Len() == 0
}

// IDs returns document identifiers in corpus order.
func (c *Corpus) IDs() []string {
	ids := make([]string, c.Len())
	for i := range ids {
		ids[i] = c.Documents[i].ID
	}
	return ids
}

// Texts returns document contents in corpus order.
func (c *Corpus) Texts() []string {
	texts := make([]string, c.Len())
	for i := range texts {
		texts[i] = c.Documents[i].Content
	}
	return texts
}

func (c *Corpus) rebuildIndex() {
	c.index = make(map[string]int, len(c.Documents))
	for i := range c.Documents {
		c.index[c.Documents[i].ID] = i
	}
}
