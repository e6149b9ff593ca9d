// Package sdf holds typed SDFormat documents.
//
// Most types in this package are generated from the bundled SDFormat schema by
// cmd/sdfgen into zz_generated.go. The rest are maintained by hand because the
// schema cannot describe them as plain structs: the 3-vector and pose codecs,
// the generic element tree carried by plugins, and the geometry shape union.
//
// Values are not safe for concurrent mutation; a parsed document belongs to
// whoever parsed it.
package sdf

//go:generate go run ../../cmd/sdfgen -out zz_generated.go -package sdf
