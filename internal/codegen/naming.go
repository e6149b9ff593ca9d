package codegen

import (
	"go/token"
	"strings"

	"github.com/iancoleman/strcase"
	"sdformat-go/internal/schema"
)

// Storage types for schema scalar types. Anything unknown is kept as text.
var storageTypes = map[string]string{
	"double":  "float64",
	"bool":    "bool",
	"vector3": "Vector3d",
}

func storageType(schemaType string) string {
	if t, ok := storageTypes[schemaType]; ok {
		return t
	}
	return "string"
}

// pascal converts a tag to PascalCase. Colons in experimental names
// ("gz:extra") separate words.
func pascal(name string) string {
	return strcase.ToCamel(strings.ReplaceAll(name, ":", "_"))
}

// topLevelName names the type of a schema file's root element after the file.
func topLevelName(prefix, file string) string {
	return prefix + pascal(strings.TrimSuffix(file, schema.Ext))
}

// fieldNames hands out unique exported identifiers within one struct.
type fieldNames map[string]bool

func newFieldNames(hasText bool) fieldNames {
	names := fieldNames{"XMLName": true}
	if hasText {
		names[textField] = true
	}
	return names
}

func (n fieldNames) next(tag string) string {
	id := pascal(tag)
	if !token.IsIdentifier(id) || !token.IsExported(id) {
		id = "X" + id
	}
	for n[id] {
		id += "_"
	}
	n[id] = true
	return id
}
