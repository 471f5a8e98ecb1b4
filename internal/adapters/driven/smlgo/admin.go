package smlgo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// Provinces fetches all top-level regions. The endpoint takes an empty
// JSON object as its body.
func (c *Client) Provinces(ctx context.Context) domain.Result {
	return adminFetch[domain.Province](ctx, c, "/get/provinces", struct{}{}, "provinces")
}

// Amphures fetches the districts of one province. The identifier is sent
// exactly as given; membership is validated by the service.
func (c *Client) Amphures(ctx context.Context, provinceID int) domain.Result {
	return adminFetch[domain.Amphure](ctx, c, "/get/amphures",
		amphureRequest{ProvinceID: provinceID}, "amphures")
}

// Tambons fetches the sub-districts of one amphure within one province.
func (c *Client) Tambons(ctx context.Context, amphureID, provinceID int) domain.Result {
	return adminFetch[domain.Tambon](ctx, c, "/get/tambons",
		tambonRequest{AmphureID: amphureID, ProvinceID: provinceID}, "tambons")
}

// FindByZipCode resolves a postal code to full location triples.
func (c *Client) FindByZipCode(ctx context.Context, zipCode int) domain.Result {
	return adminFetch[domain.Location](ctx, c, "/get/findbyzipcode",
		zipCodeRequest{ZipCode: zipCode}, "locations")
}

// adminFetch posts a lookup request and decodes the envelope's data into a
// typed slice, so hierarchy payload shapes never leak past the adapter.
func adminFetch[T any](ctx context.Context, c *Client, path string, payload any, what string) domain.Result {
	start := time.Now()
	body, _, err := c.postJSON(ctx, path, payload)
	elapsed := time.Since(start)

	if err != nil {
		return domain.Failure(elapsed, "fetch %s: %v", what, err)
	}

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.Failure(elapsed, "decode %s response: %v", what, err)
	}

	result := envelopeResult(env, time.Since(start))
	if !result.Success {
		return result
	}

	var records []T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return domain.Failure(result.Elapsed, "decode %s data: %v", what, err)
		}
	}
	result.Data = records
	return result
}
