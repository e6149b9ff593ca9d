// Package schemas bundles the SDFormat schema files the generated types in
// pkg/sdf are compiled from.
package schemas

import (
	"embed"

	"sdformat-go/internal/schema"
)

// DefaultVersion is the SDFormat version the bundled types were generated for.
const DefaultVersion = "1.10"

//go:embed 1.10/*.sdf
var FS embed.FS

// Load parses the bundled schema files of version.
func Load(version string) (schema.Set, error) {
	return schema.LoadFS(FS, version)
}
