package smlgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// newTestClient points a client at a test server with no rate limiting.
func newTestClient(server *httptest.Server) *Client {
	return NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second})
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Nil(t, client.limiter)
}

func TestNewClientWithRateLimit(t *testing.T) {
	client := NewClient(Config{RequestsPerSecond: 2})
	assert.NotNil(t, client.limiter)
}

func TestGuide(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/guide", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"api_name": "SMLGOAPI",
			"version": "1.0.0",
			"endpoints": {
				"select": {"method": "POST", "url": "/select", "description": "run a query"},
				"tables": {"method": "GET", "urls": ["/api/tables", "/tables"]}
			},
			"ai_agent_instructions": {
				"best_practices": ["call /guide first", "limit search results"]
			}
		}`))
	}))
	defer server.Close()

	descriptor, err := newTestClient(server).Guide(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "SMLGOAPI", descriptor.Name)
	assert.Equal(t, "1.0.0", descriptor.Version)
	assert.Equal(t, []string{"call /guide first", "limit search results"}, descriptor.BestPractices)

	require.Len(t, descriptor.Endpoints, 2)
	assert.Equal(t, domain.EndpointInfo{
		Method: "POST", URL: "/select", Description: "run a query",
	}, descriptor.Endpoints["select"])

	// Multi-url endpoints collapse to the first path.
	assert.Equal(t, "/api/tables", descriptor.Endpoints["tables"].URL)
}

func TestGuideUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newTestClient(server).Guide(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch guide")
}

func TestGuideMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server).Guide(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode guide")
}

func TestHealthHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "healthy", "database": "connected", "version": "1.0.0"}`))
	}))
	defer server.Close()

	report := newTestClient(server).Health(context.Background())

	assert.Equal(t, domain.HealthHealthy, report.State)
	assert.Equal(t, "healthy", report.Status)
	assert.Equal(t, "connected", report.Database)
	assert.Equal(t, "1.0.0", report.Version)
	assert.Greater(t, report.Elapsed, time.Duration(0))
	assert.Empty(t, report.Error)
}

func TestHealthDegraded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "starting", "database": "connecting"}`))
	}))
	defer server.Close()

	report := newTestClient(server).Health(context.Background())
	assert.Equal(t, domain.HealthDegraded, report.State)
	assert.Equal(t, "starting", report.Status)
}

func TestHealthUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	report := newTestClient(server).Health(context.Background())
	assert.Equal(t, domain.HealthUnreachable, report.State)
	assert.NotEmpty(t, report.Error)
}

func TestHealthMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	report := newTestClient(server).Health(context.Background())
	assert.Equal(t, domain.HealthUnreachable, report.State)
	assert.Contains(t, report.Error, "decode health response")
}

func TestRequestIDUniquePerDispatch(t *testing.T) {
	seen := make(map[string]bool)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-ID")] = true
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	client.Health(context.Background())
	client.Health(context.Background())

	assert.Len(t, seen, 2)
}

func TestClose(t *testing.T) {
	assert.NoError(t, NewClient(Config{}).Close())
}
