package httpapi

import (
	"net/http"

	"sdformat-go/schemas"
)

// Version is the service version reported by /version.
var Version = "0.1.0"

func VersionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"name":    "sdfd",
			"version": Version,
			"sdf":     schemas.DefaultVersion,
		})
	}
}
