package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(t, r, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doRequest(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/items"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds")
	assert.Contains(t, body, "http_inflight_requests")

	// Scrapes do not count themselves.
	assert.NotContains(t, body, `path="/metrics"`)
}
