package httpapi

import (
	"net/http"
)

// HealthHandler reports whether the service can reach its database. A nil
// db is treated as healthy.
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "db": "ok"}
		if db == nil {
			status["db"] = "disabled"
		} else if err := db.Ping(r.Context()); err != nil {
			status["status"], status["db"] = "degraded", err.Error()
			writeJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}
