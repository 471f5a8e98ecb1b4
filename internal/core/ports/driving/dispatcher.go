package driving

import (
	"context"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// DispatcherService maps logical operations onto gateway calls. Every
// operation is synchronous and returns a domain.Result; no failure is
// raised past this boundary. Invalid input is rejected locally before any
// transport call is attempted.
type DispatcherService interface {
	// ExecuteCommand sends an administrative statement.
	ExecuteCommand(ctx context.Context, statement string) domain.Result

	// ExecuteQuery sends a read-only query.
	ExecuteQuery(ctx context.Context, query string) domain.Result

	// Search sends a free-text search. The limit must be positive;
	// non-positive limits fail locally with zero transport calls.
	Search(ctx context.Context, term string, limit int) domain.Result

	// Tables lists database tables.
	Tables(ctx context.Context) domain.Result

	// HealthCheck probes service health and derives the tri-state signal.
	HealthCheck(ctx context.Context) domain.HealthReport
}
