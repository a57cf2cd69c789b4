package catalog

import "errors"

var (
	// ErrStorageUnavailable wraps any failure to read or write the catalog file.
	ErrStorageUnavailable = errors.New("catalog storage unavailable")

	ErrNotFound     = errors.New("listing not found")
	ErrDuplicateKey = errors.New("listing already exists")
	ErrUnknownField = errors.New("unknown listing field")
	ErrInvalidValue = errors.New("invalid field value")
)
