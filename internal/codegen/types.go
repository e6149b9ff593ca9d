package codegen

import (
	"fmt"

	"sdformat-go/internal/schema"
)

// FieldKind says where a field's value lives in the document.
type FieldKind int

const (
	KindAttribute FieldKind = iota
	KindScalar
	KindStruct
	KindInclude
	KindRef
	KindText
	// KindAnyAttr collects the attributes no other field declares, such as
	// xmlns declarations.
	KindAnyAttr
)

func (k FieldKind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindScalar:
		return "scalar"
	case KindStruct:
		return "struct"
	case KindInclude:
		return "include"
	case KindRef:
		return "ref"
	case KindText:
		return "text"
	case KindAnyAttr:
		return "any-attr"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

const (
	textField    = "Data"
	anyAttrField = "attrs"
)

// Field is one member of a generated struct.
type Field struct {
	Name     string
	Tag      string
	Kind     FieldKind
	BaseType string
	Required schema.Cardinality
	// Indirect holds a by-value slot behind a pointer. Ref slots are always
	// indirect; other fields become indirect only to break a cycle.
	Indirect bool
	Default  *string
}

// GoType is the field's type expression with its container applied.
func (f Field) GoType() string {
	switch {
	case f.Kind == KindRef:
		return "[]*" + f.BaseType
	case f.Kind == KindAnyAttr:
		return "[]xml.Attr"
	case f.Indirect && f.Required == schema.One:
		return "*" + f.BaseType
	default:
		return f.Required.Wrap(f.BaseType)
	}
}

// StructTag is the encoding/xml tag of the field, including backquotes.
func (f Field) StructTag() string {
	switch f.Kind {
	case KindText:
		return "`xml:\",chardata\"`"
	case KindAnyAttr:
		return "`xml:\",any,attr\"`"
	case KindAttribute:
		if f.Required == schema.One {
			return fmt.Sprintf("`xml:\"%s,attr\"`", f.Tag)
		}
		return fmt.Sprintf("`xml:\"%s,attr,omitempty\"`", f.Tag)
	default:
		if f.Required == schema.Optional || f.Indirect && f.Kind != KindRef {
			return fmt.Sprintf("`xml:\"%s,omitempty\"`", f.Tag)
		}
		return fmt.Sprintf("`xml:\"%s\"`", f.Tag)
	}
}

// TypeDef describes one generated struct.
type TypeDef struct {
	Name        string
	Tag         string
	SourceFile  string
	Description string
	Fields      []Field
}

// Field returns the field with Go identifier name.
func (t TypeDef) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
