// Package connectors provides the adapters that read document trees.
// The filesystem connector lists tiers, loads corpora and watches for
// changes under a local root directory.
package connectors
