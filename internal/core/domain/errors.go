package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates no normaliser handles a MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Input Errors.

	// ErrRootNotFound indicates the selected root directory does not exist.
	// Returned before any tier is processed.
	ErrRootNotFound = errors.New("root directory does not exist")

	// ErrNotADirectory indicates the selected root exists but is a file.
	ErrNotADirectory = errors.New("not a directory")

	// Pipeline Errors.

	// ErrInvalidParams indicates clustering parameters out of range.
	ErrInvalidParams = fmt.Errorf("%w: clustering parameters", ErrInvalidInput)

	// ErrDimensionMismatch indicates a matrix does not match its corpus.
	ErrDimensionMismatch = fmt.Errorf("%w: matrix size does not match corpus", ErrInvalidInput)
)
