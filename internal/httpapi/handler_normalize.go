package httpapi

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"sdformat-go/internal/config"
	"sdformat-go/pkg/sdf"
)

const defaultIndent = "  "

// NormalizeHandler parses an <sdf> document into the generated types and
// writes it back. The indent query parameter sets the number of spaces per
// level; 0 gives compact output.
func NormalizeHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		indent := defaultIndent
		if v := r.URL.Query().Get("indent"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || n > 8 {
				http.Error(w, "indent must be between 0 and 8", http.StatusBadRequest)
				return
			}
			indent = strings.Repeat(" ", n)
		}

		body, ok := readBody(w, r, cfg.MaxDocumentBytes)
		if !ok {
			return
		}

		root, err := sdf.ParseDocument(bytes.NewReader(body))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var out bytes.Buffer
		if err := sdf.WriteDocument(&out, root, indent); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write(out.Bytes())
	}
}
