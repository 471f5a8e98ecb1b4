package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointNames(t *testing.T) {
	descriptor := ServiceDescriptor{
		Endpoints: map[string]EndpointInfo{
			"select":  {Method: "POST", URL: "/select"},
			"command": {Method: "POST", URL: "/command"},
			"health":  {Method: "GET", URL: "/health"},
		},
	}

	assert.Equal(t, []string{"command", "health", "select"}, descriptor.EndpointNames())
}

func TestEndpointNamesEmpty(t *testing.T) {
	assert.Empty(t, ServiceDescriptor{}.EndpointNames())
}

func TestHealthStateString(t *testing.T) {
	assert.Equal(t, "healthy", HealthHealthy.String())
	assert.Equal(t, "degraded", HealthDegraded.String())
	assert.Equal(t, "unreachable", HealthUnreachable.String())
	assert.Equal(t, "unreachable", HealthState(99).String())
}
