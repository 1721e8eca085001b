package handlers

import (
	"io"
	"log"
	"net/http"
)

const indexHTML = `<html>
  <body style="font-family:system-ui; padding:20px;">
    <h2>Let's Meet API</h2>
    <p>This server only provides API endpoints.</p>
    <ul>
      <li>Health check: <a href="/api/health">/api/health</a></li>
      <li>Find a midpoint: <code>POST /api/find_midpoint</code></li>
    </ul>
  </body>
</html>
`

// Index serves a static landing page pointing at the API.
func Index(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, indexHTML); err != nil {
		log.Printf("write index failed: %v", err)
	}
}
