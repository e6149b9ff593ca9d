package codegen

import "errors"

var (
	// ErrUnresolvedInclude is returned when an include names a file outside the schema set.
	ErrUnresolvedInclude = errors.New("unresolved include")
	// ErrUnresolvedReference is returned when a ref slot names no enclosing or top-level element.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrDuplicateType is returned when two schema paths map to the same Go type name.
	ErrDuplicateType = errors.New("duplicate type name")
	// ErrUnnamedElement is returned for a composite declaration with neither name nor ref.
	ErrUnnamedElement = errors.New("unnamed element")
)
