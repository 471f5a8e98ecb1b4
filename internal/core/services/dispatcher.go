package services

import (
	"context"
	"strings"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driven"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driving"
	"github.com/smlsoft/smlgo-cli/internal/logger"
)

// Ensure DispatcherService implements the interface.
var _ driving.DispatcherService = (*DispatcherService)(nil)

// DispatcherService maps logical operations onto gateway calls. Input is
// validated locally before any transport round trip: a rejected request
// costs nothing on the wire.
type DispatcherService struct {
	gateway driven.APIGateway
}

// NewDispatcherService creates a new dispatcher service.
func NewDispatcherService(gateway driven.APIGateway) *DispatcherService {
	return &DispatcherService{gateway: gateway}
}

// ExecuteCommand sends an administrative statement.
func (s *DispatcherService) ExecuteCommand(ctx context.Context, statement string) domain.Result {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return domain.Failure(0, "%v: statement must not be empty", domain.ErrInvalidInput)
	}
	if s.gateway == nil {
		return domain.Failure(0, "%v", domain.ErrGatewayNotConfigured)
	}

	logger.Debug("dispatch command: %.50q", statement)
	result := s.gateway.ExecuteCommand(ctx, statement)
	logger.Debug("command done: success=%t elapsed=%s", result.Success, result.Elapsed)
	return result
}

// ExecuteQuery sends a read-only query.
func (s *DispatcherService) ExecuteQuery(ctx context.Context, query string) domain.Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Failure(0, "%v: query must not be empty", domain.ErrInvalidInput)
	}
	if s.gateway == nil {
		return domain.Failure(0, "%v", domain.ErrGatewayNotConfigured)
	}

	logger.Debug("dispatch query: %.50q", query)
	result := s.gateway.ExecuteQuery(ctx, query)
	logger.Debug("query done: success=%t rows=%d elapsed=%s",
		result.Success, result.RowCount, result.Elapsed)
	return result
}

// Search sends a bounded free-text search. Non-positive limits fail fast
// with zero transport calls.
func (s *DispatcherService) Search(ctx context.Context, term string, limit int) domain.Result {
	term = strings.TrimSpace(term)
	if term == "" {
		return domain.Failure(0, "%v: search term must not be empty", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		return domain.Failure(0, "%v: limit must be positive, got %d", domain.ErrInvalidInput, limit)
	}
	if s.gateway == nil {
		return domain.Failure(0, "%v", domain.ErrGatewayNotConfigured)
	}

	logger.Debug("dispatch search: term=%q limit=%d", term, limit)
	result := s.gateway.Search(ctx, term, limit)
	logger.Debug("search done: success=%t total_found=%d elapsed=%s",
		result.Success, result.TotalFound, result.Elapsed)
	return result
}

// Tables lists database tables.
func (s *DispatcherService) Tables(ctx context.Context) domain.Result {
	if s.gateway == nil {
		return domain.Failure(0, "%v", domain.ErrGatewayNotConfigured)
	}

	logger.Debug("dispatch tables")
	return s.gateway.Tables(ctx)
}

// HealthCheck probes service health. A report is always produced; an
// unconfigured gateway reads as unreachable.
func (s *DispatcherService) HealthCheck(ctx context.Context) domain.HealthReport {
	if s.gateway == nil {
		return domain.HealthReport{
			State: domain.HealthUnreachable,
			Error: domain.ErrGatewayNotConfigured.Error(),
		}
	}

	logger.Debug("dispatch health check")
	report := s.gateway.Health(ctx)
	logger.Debug("health: %s (%s)", report.State, report.Elapsed)
	return report
}
