// Package smlgo provides the HTTP gateway adapter for the SMLGO data
// service. It owns the transport (timeouts, connection reuse) and the
// response normalisation: every heterogeneous body shape is folded into a
// domain.Result or typed descriptor before it crosses the port boundary.
package smlgo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driven"
	"github.com/smlsoft/smlgo-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.APIGateway = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8008"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the SMLGO client. The zero value gets
// sensible defaults; there is no process-wide state.
type Config struct {
	// BaseURL is the service base URL (default: http://localhost:8008).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond enables client-side rate limiting when positive.
	RequestsPerSecond float64

	// Burst is the rate limiter burst size (default: 1 when limiting).
	Burst int
}

// Client talks to the SMLGO service over HTTP with JSON bodies.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewClient creates a new SMLGO client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: limiter,
	}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Guide fetches the service's self-description document. Unlike the other
// operations, failure is returned as an error: discovery is fatal for a
// session and the caller must not proceed.
func (c *Client) Guide(ctx context.Context) (domain.ServiceDescriptor, error) {
	body, _, err := c.get(ctx, "/guide")
	if err != nil {
		return domain.ServiceDescriptor{}, fmt.Errorf("fetch guide: %w", err)
	}

	var doc guideDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return domain.ServiceDescriptor{}, fmt.Errorf("decode guide: %w", err)
	}

	return doc.descriptor(), nil
}

// Health probes the service and derives the tri-state health report.
// A report is always produced; transport failures read as unreachable.
func (c *Client) Health(ctx context.Context) domain.HealthReport {
	start := time.Now()
	body, _, err := c.get(ctx, "/health")
	elapsed := time.Since(start)

	if err != nil {
		return domain.HealthReport{
			State:   domain.HealthUnreachable,
			Elapsed: elapsed,
			Error:   err.Error(),
		}
	}

	var health healthBody
	if err := json.Unmarshal(body, &health); err != nil {
		return domain.HealthReport{
			State:   domain.HealthUnreachable,
			Elapsed: elapsed,
			Error:   fmt.Sprintf("decode health response: %v", err),
		}
	}

	state := domain.HealthDegraded
	if health.Status == "healthy" {
		state = domain.HealthHealthy
	}

	return domain.HealthReport{
		State:    state,
		Status:   health.Status,
		Database: health.Database,
		Version:  health.Version,
		Elapsed:  elapsed,
	}
}

// Close releases idle transport connections.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// get issues a GET request and returns the raw body.
func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	return c.do(req)
}

// postJSON issues a POST request with a JSON body and returns the raw body.
func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, int, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// do sends the request after rate limiting, tagging it with a request id
// for correlation against the service's request log.
func (c *Client) do(req *http.Request) ([]byte, int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, 0, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	logger.Debug("%s %s request_id=%s", req.Method, req.URL.Path, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response (status %d): %w", resp.StatusCode, err)
	}

	logger.Debug("%s %s status=%d bytes=%d", req.Method, req.URL.Path, resp.StatusCode, len(body))
	return body, resp.StatusCode, nil
}
