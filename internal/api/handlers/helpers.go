package handlers

import (
	"encoding/json"
	"log"
	"midpoint-service/internal/platform/obs"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf(
			"req_id=%s encode failed: method=%s path=%s err=%v",
			obs.RequestID(r.Context()), r.Method, r.URL.Path, err,
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// Reject anything but method with 405 and an Allow header.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}
