package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driven"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driving"
	"github.com/smlsoft/smlgo-cli/internal/logger"
)

// Ensure DiscoveryService implements the interface.
var _ driving.DiscoveryService = (*DiscoveryService)(nil)

// DiscoveryService fetches the service's self-description once per session
// and serves the cached descriptor afterwards. The descriptor's content is
// advisory; only reachability of the guide endpoint is mandatory.
type DiscoveryService struct {
	gateway driven.APIGateway

	mu         sync.Mutex
	descriptor domain.ServiceDescriptor
	discovered bool
}

// NewDiscoveryService creates a new discovery service.
func NewDiscoveryService(gateway driven.APIGateway) *DiscoveryService {
	return &DiscoveryService{gateway: gateway}
}

// Discover returns the service descriptor. The first successful call
// performs one transport fetch; repeated calls return the cached copy.
func (s *DiscoveryService) Discover(ctx context.Context) (domain.ServiceDescriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discovered {
		logger.Debug("discovery: serving cached descriptor for %q", s.descriptor.Name)
		return s.descriptor, nil
	}

	return s.fetch(ctx)
}

// Refresh discards the cached descriptor and fetches a fresh one.
func (s *DiscoveryService) Refresh(ctx context.Context) (domain.ServiceDescriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discovered = false
	return s.fetch(ctx)
}

// Descriptor returns the cached descriptor and whether one is held.
func (s *DiscoveryService) Descriptor() (domain.ServiceDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.descriptor, s.discovered
}

// fetch performs the guide request (caller must hold lock).
func (s *DiscoveryService) fetch(ctx context.Context) (domain.ServiceDescriptor, error) {
	if s.gateway == nil {
		return domain.ServiceDescriptor{},
			fmt.Errorf("%w: %w", domain.ErrDiscoveryFailed, domain.ErrGatewayNotConfigured)
	}

	logger.Section("Discovery")
	descriptor, err := s.gateway.Guide(ctx)
	if err != nil {
		logger.Warn("discovery failed: %v", err)
		return domain.ServiceDescriptor{}, fmt.Errorf("%w: %w", domain.ErrDiscoveryFailed, err)
	}

	logger.Info("discovered %s %s with %d endpoints",
		descriptor.Name, descriptor.Version, len(descriptor.Endpoints))

	s.descriptor = descriptor
	s.discovered = true
	return descriptor, nil
}
