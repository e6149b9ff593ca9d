package docstore

import "errors"

var (
	// ErrInvalidDocument is returned when the body is not a valid <sdf> document.
	ErrInvalidDocument = errors.New("invalid sdf document")
	// ErrDuplicateDocument is returned when a document with the same digest exists.
	ErrDuplicateDocument = errors.New("duplicate sdf document")
	// ErrNotFound is returned when no document has the requested id.
	ErrNotFound = errors.New("document not found")
)
