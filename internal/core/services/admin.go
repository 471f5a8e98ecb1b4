package services

import (
	"context"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driven"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driving"
	"github.com/smlsoft/smlgo-cli/internal/logger"
)

// Ensure AdminService implements the interface.
var _ driving.AdminService = (*AdminService)(nil)

// AdminService is the hierarchical resource client. Each level below the
// top requires parent identifiers from a previous fetch; they are passed
// through to the gateway unchanged. Records come back in service order -
// the client never resorts them.
type AdminService struct {
	gateway driven.APIGateway
}

// NewAdminService creates a new administrative hierarchy client.
func NewAdminService(gateway driven.APIGateway) *AdminService {
	return &AdminService{gateway: gateway}
}

// ListProvinces fetches all top-level regions.
func (s *AdminService) ListProvinces(ctx context.Context) domain.Result {
	if s.gateway == nil {
		return domain.Failure(0, "%v", domain.ErrGatewayNotConfigured)
	}

	logger.Debug("admin: list provinces")
	return s.gateway.Provinces(ctx)
}

// ListAmphures fetches the districts of one province.
func (s *AdminService) ListAmphures(ctx context.Context, provinceID int) domain.Result {
	if provinceID <= 0 {
		return domain.Failure(0, "%v: province id must be positive, got %d",
			domain.ErrInvalidInput, provinceID)
	}
	if s.gateway == nil {
		return domain.Failure(0, "%v", domain.ErrGatewayNotConfigured)
	}

	logger.Debug("admin: list amphures for province %d", provinceID)
	return s.gateway.Amphures(ctx, provinceID)
}

// ListTambons fetches the sub-districts of one amphure. Amphure ids are
// only unique within their province, so both identifiers are required
// together; a missing half fails locally.
func (s *AdminService) ListTambons(ctx context.Context, amphureID, provinceID int) domain.Result {
	if amphureID <= 0 || provinceID <= 0 {
		return domain.Failure(0,
			"%v: amphure id and province id are required together, got amphure=%d province=%d",
			domain.ErrInvalidInput, amphureID, provinceID)
	}
	if s.gateway == nil {
		return domain.Failure(0, "%v", domain.ErrGatewayNotConfigured)
	}

	logger.Debug("admin: list tambons for amphure %d in province %d", amphureID, provinceID)
	return s.gateway.Tambons(ctx, amphureID, provinceID)
}

// FindByZipCode resolves a postal code to full location triples.
func (s *AdminService) FindByZipCode(ctx context.Context, zipCode int) domain.Result {
	if zipCode <= 0 {
		return domain.Failure(0, "%v: zip code must be positive, got %d",
			domain.ErrInvalidInput, zipCode)
	}
	if s.gateway == nil {
		return domain.Failure(0, "%v", domain.ErrGatewayNotConfigured)
	}

	logger.Debug("admin: find by zip code %d", zipCode)
	return s.gateway.FindByZipCode(ctx, zipCode)
}
