package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordergate/internal/config"
	"ordergate/internal/store/storetest"
)

func newTestServer(t *testing.T, backendURL string) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BackendURL: backendURL,
	}
	srv := NewServer(":0", storetest.NewMemory(), cfg, log)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func TestSignupLoginProfileFlow(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer backend.Close()
	ts := newTestServer(t, backend.URL)

	// Signup
	resp := postJSON(t, ts.URL+"/api/auth/signup",
		`{"adminName":"John Doe","userId":"john123","phoneNumber":"1234567890"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "john123", user["userId"])

	// Repeating the same signup conflicts.
	resp = postJSON(t, ts.URL+"/api/auth/signup",
		`{"adminName":"John Doe","userId":"john123","phoneNumber":"1234567890"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Contains(t, body["message"], "already exists")

	// Login
	resp = postJSON(t, ts.URL+"/api/auth/login",
		`{"userId":"john123","phoneNumber":"1234567890"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	token := body["data"].(map[string]interface{})["token"].(string)
	require.NotEmpty(t, token)

	// Profile with the issued token.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/auth/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	profResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, profResp.StatusCode)
	body = decodeBody(t, profResp)
	user = body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "John Doe", user["adminName"])

	// Profile without a token.
	noTokenResp, err := http.Get(ts.URL + "/api/auth/profile")
	require.NoError(t, err)
	defer noTokenResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, noTokenResp.StatusCode)
}

func TestProxyRouteWired(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list_csv_links", r.URL.Path)
		_, _ = w.Write([]byte(`{"links":[]}`))
	}))
	defer backend.Close()
	ts := newTestServer(t, backend.URL)

	resp, err := http.Get(ts.URL + "/list_csv_links")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"links":[]}`, string(raw))
}

func TestHealth(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer backend.Close()
	ts := newTestServer(t, backend.URL)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, backend.URL, body["backend_url"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestUnknownRouteListsAvailable(t *testing.T) {
	ts := newTestServer(t, "http://localhost:0")

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Route not found", body["error"])
	routes := body["available_routes"].([]interface{})
	assert.Contains(t, routes, "POST /api/auth/signup")
	assert.Contains(t, routes, "GET /get_order_details")
}

func TestMethodMismatchAlsoFallsThrough(t *testing.T) {
	ts := newTestServer(t, "http://localhost:0")

	// /list_csv_links is GET-only in the whitelist.
	resp := postJSON(t, ts.URL+"/list_csv_links", `{}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
