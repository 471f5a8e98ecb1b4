package smlgo

import (
	"encoding/json"
	"time"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// Request bodies. The service takes the statement or search term verbatim
// in a "query" field.
type queryRequest struct {
	Query string `json:"query"`
}

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type amphureRequest struct {
	ProvinceID int `json:"province_id"`
}

type tambonRequest struct {
	AmphureID  int `json:"amphure_id"`
	ProvinceID int `json:"province_id"`
}

type zipCodeRequest struct {
	ZipCode int `json:"zipcode"`
}

// apiEnvelope is the service's common response wrapper. Data is kept raw:
// its shape depends on the operation and is decoded per call site.
type apiEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	RowCount   int             `json:"row_count"`
	DurationMS float64         `json:"duration_ms"`
	Metadata   *searchMetadata `json:"metadata"`
}

// searchMetadata carries search-specific counters. TotalFound counts all
// server-side matches, not just the returned page.
type searchMetadata struct {
	TotalFound int     `json:"total_found"`
	DurationMS float64 `json:"duration_ms"`
}

// healthBody is the health endpoint's response shape.
type healthBody struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// guideDocument is the self-description document's wire shape. Endpoint
// metadata is loosely typed on the wire, so it is decoded tolerantly.
type guideDocument struct {
	APIName             string                     `json:"api_name"`
	Version             string                     `json:"version"`
	Endpoints           map[string]json.RawMessage `json:"endpoints"`
	AIAgentInstructions struct {
		BestPractices []string `json:"best_practices"`
	} `json:"ai_agent_instructions"`
}

// descriptor converts the wire document into the domain descriptor.
// Missing or odd-shaped fields default to empty rather than failing.
func (g guideDocument) descriptor() domain.ServiceDescriptor {
	endpoints := make(map[string]domain.EndpointInfo, len(g.Endpoints))
	for name, raw := range g.Endpoints {
		endpoints[name] = decodeEndpoint(raw)
	}

	return domain.ServiceDescriptor{
		Name:          g.APIName,
		Version:       g.Version,
		Endpoints:     endpoints,
		BestPractices: g.AIAgentInstructions.BestPractices,
	}
}

// decodeEndpoint extracts known fields from one endpoint's metadata.
// Some endpoints publish a single "url", others a "urls" array; the first
// entry wins.
func decodeEndpoint(raw json.RawMessage) domain.EndpointInfo {
	var meta map[string]any
	if err := json.Unmarshal(raw, &meta); err != nil {
		return domain.EndpointInfo{}
	}

	info := domain.EndpointInfo{
		Method:      stringField(meta, "method"),
		URL:         stringField(meta, "url"),
		Description: stringField(meta, "description"),
	}

	if info.URL == "" {
		if urls, ok := meta["urls"].([]any); ok && len(urls) > 0 {
			if first, ok := urls[0].(string); ok {
				info.URL = first
			}
		}
	}

	return info
}

func stringField(meta map[string]any, key string) string {
	value, ok := meta[key].(string)
	if !ok {
		return ""
	}
	return value
}

// envelopeResult folds a decoded envelope into a domain.Result. A body
// whose own success flag is false (or absent) becomes a failure carrying
// the service's error message, or a generic one when the service omits it.
func envelopeResult(env apiEnvelope, elapsed time.Duration) domain.Result {
	if !env.Success {
		message := env.Error
		if message == "" {
			message = "operation failed"
		}
		return domain.Result{
			Success:        false,
			Error:          message,
			Elapsed:        elapsed,
			ServerDuration: env.DurationMS,
		}
	}

	result := domain.Result{
		Success:        true,
		Message:        env.Message,
		RowCount:       env.RowCount,
		Elapsed:        elapsed,
		ServerDuration: env.DurationMS,
	}
	if env.Metadata != nil {
		result.TotalFound = env.Metadata.TotalFound
		if result.ServerDuration == 0 {
			result.ServerDuration = env.Metadata.DurationMS
		}
	}
	return result
}

// decodeRecords decodes a raw data payload into generic records. A null
// or absent payload yields nil; a scalar or mapping payload is preserved
// as-is via the fallback.
func decodeRecords(raw json.RawMessage) (any, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, true
	}

	// Not a record sequence: keep the payload in its generic form.
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, false
	}
	return generic, true
}
