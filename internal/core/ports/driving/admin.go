package driving

import (
	"context"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// AdminService is the hierarchical resource client for the three-level
// administrative hierarchy. Each level's lookup requires parent context
// obtained from the level above; identifiers are passed through unchanged.
// A failure at any level is that level's Result with Success false - the
// caller decides whether to skip the branch and continue.
type AdminService interface {
	// ListProvinces fetches all top-level regions.
	ListProvinces(ctx context.Context) domain.Result

	// ListAmphures fetches the districts of the given province. The
	// provinceID must come from a previously fetched province record.
	ListAmphures(ctx context.Context, provinceID int) domain.Result

	// ListTambons fetches the sub-districts of the given amphure. Both
	// identifiers are required together because amphure ids are only
	// unique within their province.
	ListTambons(ctx context.Context, amphureID, provinceID int) domain.Result

	// FindByZipCode resolves a postal code to full location triples.
	FindByZipCode(ctx context.Context, zipCode int) domain.Result
}
