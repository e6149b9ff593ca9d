package httpapi

import (
	"net/http"

	"sdformat-go/internal/codegen"
)

type fieldInfo struct {
	Name     string `json:"name"`
	Tag      string `json:"tag"`
	Kind     string `json:"kind"`
	Type     string `json:"type"`
	Required string `json:"required"`
	Default  string `json:"default,omitempty"`
}

type typeInfo struct {
	Name        string      `json:"name"`
	Tag         string      `json:"tag"`
	SourceFile  string      `json:"source_file"`
	Description string      `json:"description,omitempty"`
	Fields      []fieldInfo `json:"fields"`
}

// SchemaTypesHandler lists the generated types. The optional tag query
// parameter filters by element name.
func SchemaTypesHandler(types []codegen.TypeDef) http.HandlerFunc {
	catalog := make([]typeInfo, 0, len(types))
	for _, t := range types {
		ti := typeInfo{
			Name:        t.Name,
			Tag:         t.Tag,
			SourceFile:  t.SourceFile,
			Description: t.Description,
			Fields:      make([]fieldInfo, 0, len(t.Fields)),
		}
		for _, f := range t.Fields {
			fi := fieldInfo{
				Name:     f.Name,
				Tag:      f.Tag,
				Kind:     f.Kind.String(),
				Type:     f.GoType(),
				Required: f.Required.String(),
			}
			if f.Default != nil {
				fi.Default = *f.Default
			}
			ti.Fields = append(ti.Fields, fi)
		}
		catalog = append(catalog, ti)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		tag := r.URL.Query().Get("tag")
		if tag == "" {
			writeJSON(w, http.StatusOK, catalog)
			return
		}
		out := make([]typeInfo, 0, 1)
		for _, t := range catalog {
			if t.Tag == tag {
				out = append(out, t)
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}
