package domain

import "time"

// ClusterLabel is the discrete tag assigned to a document by clustering.
// Only equality is meaningful.
type ClusterLabel int

// NoiseLabel marks a point that belongs to no dense region. It can only
// occur when MinSamples is greater than one.
const NoiseLabel ClusterLabel = -1

// IsNoise reports whether the label marks an unclustered point.
func (l ClusterLabel) IsNoise() bool {
	return l == NoiseLabel
}

// ClusterGroup is a bucket of document identifiers sharing one label,
// in corpus order.
type ClusterGroup struct {
	// Label is the clustering tag. Noise singletons keep NoiseLabel.
	Label ClusterLabel `json:"label" yaml:"label"`

	// DocumentIDs are the members in order of first appearance.
	DocumentIDs []string `json:"documents" yaml:"documents"`
}

// Size returns the number of members.
func (g ClusterGroup) Size() int {
	return len(g.DocumentIDs)
}

// TierResult is the grouping outcome for one tier.
type TierResult struct {
	// Tier is the subdirectory name.
	Tier string `json:"tier" yaml:"tier"`

	// Documents is the number of eligible documents loaded.
	Documents int `json:"document_count" yaml:"document_count"`

	// Groups are ordered by first appearance of any member.
	Groups []ClusterGroup `json:"groups" yaml:"groups"`
}

// DuplicateGroups returns only groups with more than one member.
func (r TierResult) DuplicateGroups() []ClusterGroup {
	var dups []ClusterGroup
	for _, g := range r.Groups {
		if g.Size() > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}

// Report is the result of grouping every tier under a root.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id" yaml:"run_id"`

	// Root is the directory that was processed.
	Root string `json:"root" yaml:"root"`

	// Params are the effective clustering parameters.
	Params ClusterParams `json:"params" yaml:"params"`

	// StartedAt is when processing began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Duration is the wall time spent on the run.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Tiers are in sorted tier-name order.
	Tiers []TierResult `json:"tiers" yaml:"tiers"`
}

// TotalDocuments returns the number of documents across all tiers.
func (r *Report) TotalDocuments() int {
	if r == nil {
		return 0
	}
	total := 0
	for i := range r.Tiers {
		total += r.Tiers[i].Documents
	}
	return total
}

// Tier returns the result for a tier name.
func (r *Report) Tier(name string) (*TierResult, bool) {
	if r == nil {
		return nil, false
	}
	for i := range r.Tiers {
		if r.Tiers[i].Tier == name {
			return &r.Tiers[i], true
		}
	}
	return nil, false
}
