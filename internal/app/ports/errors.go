package ports

import "errors"

// Shared repository errors. Adapters translate backend failures into
// these so the use cases stay storage-agnostic.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
