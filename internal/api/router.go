package api

import (
	"midpoint-service/internal/api/handlers"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(finder handlers.MidpointFinder) http.Handler {
	mux := http.NewServeMux()

	midpointHandler := &handlers.MidpointHandler{Finder: finder}

	mux.HandleFunc("/{$}", handlers.Index)
	mux.HandleFunc("/api/health", handlers.Health)
	mux.HandleFunc("/api/find_midpoint", midpointHandler.Find)

	return requestIDMiddleware(loggingMiddleware(corsMiddleware(mux)))
}
