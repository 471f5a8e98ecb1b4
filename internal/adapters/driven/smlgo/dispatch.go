package smlgo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// ExecuteCommand sends an administrative statement. The service reports
// binary success plus an optional message; no row data comes back.
func (c *Client) ExecuteCommand(ctx context.Context, statement string) domain.Result {
	start := time.Now()
	body, _, err := c.postJSON(ctx, "/command", queryRequest{Query: statement})
	elapsed := time.Since(start)

	if err != nil {
		return domain.Failure(elapsed, "execute command: %v", err)
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.Failure(elapsed, "decode command response: %v", err)
	}

	return envelopeResult(env, time.Since(start))
}

// ExecuteQuery sends a read-only query and decodes the record sequence.
func (c *Client) ExecuteQuery(ctx context.Context, query string) domain.Result {
	start := time.Now()
	body, _, err := c.postJSON(ctx, "/select", queryRequest{Query: query})
	elapsed := time.Since(start)

	if err != nil {
		return domain.Failure(elapsed, "execute query: %v", err)
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.Failure(elapsed, "decode query response: %v", err)
	}

	result := envelopeResult(env, time.Since(start))
	if !result.Success {
		return result
	}

	data, ok := decodeRecords(env.Data)
	if !ok {
		return domain.Failure(result.Elapsed, "decode query data")
	}
	result.Data = data
	return result
}

// Search sends a bounded free-text search. The returned records may be
// fewer than the server-side total; both counts are surfaced separately.
func (c *Client) Search(ctx context.Context, term string, limit int) domain.Result {
	start := time.Now()
	body, _, err := c.postJSON(ctx, "/search", searchRequest{Query: term, Limit: limit})
	elapsed := time.Since(start)

	if err != nil {
		return domain.Failure(elapsed, "search: %v", err)
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.Failure(elapsed, "decode search response: %v", err)
	}

	result := envelopeResult(env, time.Since(start))
	if !result.Success {
		return result
	}

	data, ok := decodeRecords(env.Data)
	if !ok {
		return domain.Failure(result.Elapsed, "decode search data")
	}
	result.Data = data
	return result
}

// Tables lists database tables. The endpoint answers with either a bare
// array or the common envelope; both shapes normalise to a record slice.
func (c *Client) Tables(ctx context.Context) domain.Result {
	start := time.Now()
	body, _, err := c.get(ctx, "/api/tables")
	elapsed := time.Since(start)

	if err != nil {
		return domain.Failure(elapsed, "list tables: %v", err)
	}

	// Wrapped shape first: {success, data}.
	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err == nil && (env.Success || env.Error != "") {
		result := envelopeResult(env, time.Since(start))
		if !result.Success {
			return result
		}
		data, ok := decodeRecords(env.Data)
		if !ok {
			return domain.Failure(result.Elapsed, "decode tables data")
		}
		result.Data = data
		return result
	}

	// Bare sequence fallback.
	data, ok := decodeRecords(body)
	if !ok {
		return domain.Failure(time.Since(start), "decode tables response")
	}
	return domain.Result{
		Success: true,
		Data:    data,
		Elapsed: time.Since(start),
	}
}
