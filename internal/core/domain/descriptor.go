package domain

import "sort"

// ServiceDescriptor is the service's self-description document, fetched
// once from the guide endpoint at session start. Its content is advisory:
// a missing or sparse descriptor does not block subsequent operations, but
// an unreachable guide endpoint does.
type ServiceDescriptor struct {
	// Name is the service's self-reported name.
	Name string

	// Version is the service's self-reported version.
	Version string

	// Endpoints maps operation names to endpoint metadata.
	Endpoints map[string]EndpointInfo

	// BestPractices are usage hints published for automated clients,
	// in the order the service lists them.
	BestPractices []string
}

// EndpointInfo describes a single named endpoint. The guide document is
// loosely shaped, so every field may be empty.
type EndpointInfo struct {
	// Method is the HTTP method, when stated.
	Method string

	// URL is the endpoint path, when stated. Endpoints published with
	// multiple paths collapse to the first.
	URL string

	// Description is the endpoint's free-text description.
	Description string
}

// EndpointNames returns the declared endpoint names in sorted order.
func (d ServiceDescriptor) EndpointNames() []string {
	names := make([]string, 0, len(d.Endpoints))
	for name := range d.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
