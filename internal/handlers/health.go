package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

type HealthHandler struct {
	BackendURL string
}

// ServeHTTP handles GET /health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":      "OK",
		"message":     "Proxy server is running",
		"backend_url": h.BackendURL,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
