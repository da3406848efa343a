// Package normalisers turns raw markup into the plain text the grouping
// pipeline compares. Each sub-package handles one family of MIME types;
// the Registry picks the highest-priority normaliser for a document.
//
// Normalisers are registered with the Registry at startup.
package normalisers
