// Package domain defines the core business entities for clonegroup.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A markup file reduced to its visible text
//   - Corpus: The ordered documents of one tier
//   - TermWeightMatrix, SimilarityMatrix, DistanceMatrix: Pipeline matrices
//   - ClusterGroup: Identifiers of near-duplicate documents
//   - Report: The per-tier grouping result of one run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
