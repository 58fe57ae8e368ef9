// Package proxy forwards a fixed whitelist of routes to the backend service.
package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Route is a (method, path) pair eligible for forwarding.
type Route struct {
	Method string
	Path   string
}

// Whitelist enumerates every route the proxy forwards. Anything else
// falls through to the 404 handler.
var Whitelist = []Route{
	{http.MethodGet, "/"},
	{http.MethodPost, "/update_order_status"},
	{http.MethodPost, "/submit_feedback"},
	{http.MethodGet, "/list_csv_links"},
	{http.MethodPost, "/update_csv_file"},
	{http.MethodGet, "/get_order_details"},
}

type errorBody struct {
	Error interface{} `json:"error"`
}

// Forwarder relays requests to the backend base URL.
type Forwarder struct {
	BaseURL string
	Client  *http.Client
	Log     logrus.FieldLogger
}

func NewForwarder(baseURL string, log logrus.FieldLogger) *Forwarder {
	return &Forwarder{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  http.DefaultClient,
		Log:     log,
	}
}

// Handler returns the http.HandlerFunc forwarding the given whitelist route.
func (f *Forwarder) Handler(method, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.forward(w, r, method, path)
	}
}

func (f *Forwarder) forward(w http.ResponseWriter, r *http.Request, method, path string) {
	var body io.Reader
	contentType := r.Header.Get("Content-Type")

	if method == http.MethodPost {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		encoded, ct, err := Reencode(raw, contentType)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		body = bytes.NewReader(encoded)
		contentType = ct
	}

	out, err := http.NewRequestWithContext(r.Context(), method, f.BaseURL+path, body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to connect to backend server")
		return
	}
	if contentType == "" {
		contentType = "application/json"
	}
	out.Header.Set("Content-Type", contentType)
	if method == http.MethodGet {
		out.URL.RawQuery = r.URL.RawQuery
	}

	resp, err := f.Client.Do(out)
	if err != nil {
		f.Log.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Warn("backend request failed")
		writeError(w, http.StatusInternalServerError, "Failed to connect to backend server")
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to connect to backend server")
		return
	}

	if resp.StatusCode >= http.StatusBadRequest {
		// Relay the backend's status but wrap its body under an error key.
		var payload errorBody
		switch {
		case len(respBody) == 0:
			payload.Error = "Error from backend server"
		case json.Valid(respBody):
			payload.Error = json.RawMessage(respBody)
		default:
			payload.Error = string(respBody)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.StatusCode)
		_ = json.NewEncoder(w).Encode(payload)
		return
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(respBody)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
