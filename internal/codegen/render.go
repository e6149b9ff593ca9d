package codegen

import (
	"bytes"
	"fmt"
	"go/format"
)

const header = "// Code generated by sdfgen. DO NOT EDIT.\n\n"

func render(pkg string, types []TypeDef) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"encoding/xml\"\n")

	for _, t := range types {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "// %s is generated from %s.\n", t.Name, t.SourceFile)
		if lines := docLines(t.Description); len(lines) > 0 {
			buf.WriteString("//\n")
			for _, line := range lines {
				if line == "" {
					buf.WriteString("//\n")
					continue
				}
				fmt.Fprintf(&buf, "// %s\n", line)
			}
		}
		fmt.Fprintf(&buf, "type %s struct {\n", t.Name)
		fmt.Fprintf(&buf, "XMLName xml.Name `xml:\"%s\"`\n", t.Tag)
		for _, f := range t.Fields {
			fmt.Fprintf(&buf, "%s %s %s\n", f.Name, f.GoType(), f.StructTag())
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
