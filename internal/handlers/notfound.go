package handlers

import (
	"encoding/json"
	"net/http"
)

// AvailableRoutes is the route list advertised by the catch-all handler.
var AvailableRoutes = []string{
	"GET /",
	"POST /update_order_status",
	"POST /submit_feedback",
	"GET /list_csv_links",
	"POST /update_csv_file",
	"GET /get_order_details",
	"GET /health",
	"POST /api/auth/signup",
	"POST /api/auth/login",
	"GET /api/auth/profile (requires auth)",
	"PUT /api/auth/profile (requires auth)",
}

// NotFound answers every unmatched route with the list of known ones.
func NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error":            "Route not found",
		"available_routes": AvailableRoutes,
	})
}
