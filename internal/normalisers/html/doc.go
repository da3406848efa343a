// Package html provides a Normaliser for HTML documents.
// It reduces a page to its visible text: tags, scripts, styles and
// comments are dropped and entities decoded.
package html
