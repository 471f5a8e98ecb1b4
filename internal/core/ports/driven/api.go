package driven

import (
	"context"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// APIGateway is the boundary with the remote data service. Implementations
// own the transport (HTTP, timeouts, connection reuse) and the response
// normalisation: heterogeneous body shapes never leak past this interface.
//
// Guide is the only method that returns an error - discovery failure is
// fatal for a session. Every other operation recovers all failures,
// including transport failures, into the returned value.
type APIGateway interface {
	// Guide fetches the service's self-description document.
	Guide(ctx context.Context) (domain.ServiceDescriptor, error)

	// Health probes the service and derives a tri-state health report.
	Health(ctx context.Context) domain.HealthReport

	// ExecuteCommand sends an administrative statement. The Result never
	// carries row data; success is binary plus an optional message.
	ExecuteCommand(ctx context.Context, statement string) domain.Result

	// ExecuteQuery sends a read-only query. On success Data holds the
	// record sequence and RowCount the server-reported row count.
	ExecuteQuery(ctx context.Context, query string) domain.Result

	// Search sends a bounded free-text search. On success Data holds the
	// matched records and TotalFound the server-side match count, which
	// may exceed the number of records returned.
	Search(ctx context.Context, term string, limit int) domain.Result

	// Tables lists database tables. The endpoint answers with either a
	// bare array or a wrapped envelope; both normalise to a record slice.
	Tables(ctx context.Context) domain.Result

	// Provinces fetches all top-level regions. Data: []domain.Province.
	Provinces(ctx context.Context) domain.Result

	// Amphures fetches the districts of one province.
	// Data: []domain.Amphure.
	Amphures(ctx context.Context, provinceID int) domain.Result

	// Tambons fetches the sub-districts of one amphure. Both identifiers
	// are required together: amphure ids are not globally unique.
	// Data: []domain.Tambon.
	Tambons(ctx context.Context, amphureID, provinceID int) domain.Result

	// FindByZipCode resolves a postal code to full location triples.
	// Data: []domain.Location.
	FindByZipCode(ctx context.Context, zipCode int) domain.Result

	// Close releases the transport's connection resources.
	Close() error
}
