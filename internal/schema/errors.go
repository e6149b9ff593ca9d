package schema

import "errors"

var (
	// ErrMalformedSchema is returned when a schema file is not a usable declaration tree.
	ErrMalformedSchema = errors.New("malformed schema")
	// ErrMalformedInclude is returned for an include directive without a target file.
	ErrMalformedInclude = errors.New("malformed include")
)
