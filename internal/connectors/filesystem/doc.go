// Package filesystem implements CorpusSource and TreeWatcher over a
// local directory tree.
//
// A root holds one subdirectory per tier. Only files directly inside a
// tier directory are documents; nested directories are ignored. Names
// starting with a dot get no special treatment.
package filesystem
