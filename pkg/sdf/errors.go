package sdf

import "errors"

var (
	// ErrUnexpectedToken is returned when the XML stream does not have the
	// shape a decoder expects at that point.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrArityMismatch is returned when a fixed-size numeric value has the
	// wrong number of components.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrNumericFormat is returned when a component is not a number.
	ErrNumericFormat = errors.New("invalid number")
	// ErrUnsupportedFormat is returned for an unknown rotation_format.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrSerialize wraps failures of the underlying writer.
	ErrSerialize = errors.New("serialize")
)
