package driving

import (
	"context"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

// DiscoveryService fetches and caches the service's self-description.
type DiscoveryService interface {
	// Discover returns the service descriptor, fetching it on the first
	// call and serving the cached copy afterwards. A failed fetch wraps
	// domain.ErrDiscoveryFailed and must be treated as fatal for the
	// session.
	Discover(ctx context.Context) (domain.ServiceDescriptor, error)

	// Refresh discards the cache and fetches a fresh descriptor.
	Refresh(ctx context.Context) (domain.ServiceDescriptor, error)

	// Descriptor returns the cached descriptor and whether one is held.
	Descriptor() (domain.ServiceDescriptor, bool)
}
