// Package format renders grouping reports for the presentation adapters.
package format

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/clonegroup/internal/core/domain"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for format names other than text, json and yaml.
var ErrUnknownFormat = fmt.Errorf("%w: unknown output format", domain.ErrInvalidInput)

const separatorWidth = 50

// Parse converts a user-supplied name into a Format.
func Parse(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case Text, JSON, YAML:
		return f, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write encodes report to w in the given format.
func Write(w io.Writer, report *domain.Report, f Format) error {
	switch f {
	case Text, "":
		return WriteText(w, report)
	case JSON:
		return WriteJSON(w, report)
	case YAML:
		return WriteYAML(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// WriteText prints each tier's groups as numbered lines followed by a
// separator rule.
func WriteText(w io.Writer, report *domain.Report) error {
	if report == nil {
		return nil
	}
	for i := range report.Tiers {
		if err := WriteTier(w, &report.Tiers[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteTier prints a single tier result.
func WriteTier(w io.Writer, tier *domain.TierResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\nProcessing %s...\n\n", tier.Tier)
	fmt.Fprintf(&b, "\nGrouped Similar Documents in %s:\n", tier.Tier)
	for i, g := range tier.Groups {
		fmt.Fprintf(&b, "\nGroup %d:  [%s]\n", i+1, strings.Join(g.DocumentIDs, ", "))
	}
	b.WriteString(strings.Repeat("-", separatorWidth))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON encodes the report as indented JSON.
func WriteJSON(w io.Writer, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML encodes the report as a YAML document.
func WriteYAML(w io.Writer, report *domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
