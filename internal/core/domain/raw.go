package domain

// RawDocument represents opaque bytes read by the corpus loader.
// It is the loader's output before normalisation.
type RawDocument struct {
	// Tier is the tier the file belongs to.
	Tier string

	// URI is the original location (file path).
	URI string

	// MIMEType is the content type (e.g., "text/html").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains loader-specific key-value pairs.
	Metadata map[string]any
}

// Tier is one subdirectory of the selected root.
type Tier struct {
	// Name is the directory name, used to label results.
	Name string

	// Path is the absolute or root-relative directory path.
	Path string
}

// ChangeType represents the type of filesystem change.
type ChangeType int

const (
	// ChangeCreated indicates a new file or directory.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified file.
	ChangeUpdated

	// ChangeDeleted indicates a removed or renamed file.
	ChangeDeleted
)

// String returns the string representation.
func (t ChangeType) String() string {
	switch t {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// TreeChange is a change event observed under a watched root.
type TreeChange struct {
	// Type is the kind of change.
	Type ChangeType

	// Path is the affected path.
	Path string
}
