package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
)

func TestDemoCommand(t *testing.T) {
	setupTestServices(t, &fakeGateway{
		descriptor: domain.ServiceDescriptor{
			Name:    "SMLGOAPI",
			Version: "1.0.0",
			Endpoints: map[string]domain.EndpointInfo{
				"select": {Method: "POST", URL: "/select"},
			},
			BestPractices: []string{"call /guide first"},
		},
		report: domain.HealthReport{State: domain.HealthHealthy, Status: "healthy"},
		result: domain.Result{Success: true},
	})

	stdout, _, err := executeCommand(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, stdout, "== Capability discovery ==")
	assert.Contains(t, stdout, "service: SMLGOAPI 1.0.0")
	assert.Contains(t, stdout, "== Health ==")
	assert.Contains(t, stdout, "== Best practices ==")
	assert.Contains(t, stdout, "== Administrative hierarchy ==")
	assert.Contains(t, stdout, "demo finished")
}

func TestDemoCommandAbortsOnDiscoveryFailure(t *testing.T) {
	setupTestServices(t, &fakeGateway{guideErr: errFakeUnreachable})

	stdout, _, err := executeCommand(t, "demo")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrDiscoveryFailed)
	assert.Contains(t, err.Error(), "aborting demo")
	assert.NotContains(t, stdout, "demo finished")
}

func TestDemoCommandContinuesPastDegradedHealth(t *testing.T) {
	setupTestServices(t, &fakeGateway{
		descriptor: domain.ServiceDescriptor{Name: "SMLGOAPI"},
		report:     domain.HealthReport{State: domain.HealthDegraded, Status: "starting"},
		result:     domain.Result{Success: true},
	})

	stdout, _, err := executeCommand(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, stdout, "service is not healthy, continuing")
	assert.Contains(t, stdout, "demo finished")
}

func TestDemoCommandReportsFailingStepsAndContinues(t *testing.T) {
	setupTestServices(t, &fakeGateway{
		descriptor: domain.ServiceDescriptor{Name: "SMLGOAPI"},
		report:     domain.HealthReport{State: domain.HealthHealthy, Status: "healthy"},
		result:     domain.Result{Success: false, Error: "database unavailable"},
	})

	stdout, stderr, err := executeCommand(t, "demo")
	require.NoError(t, err)

	// Individual step failures are reported without aborting the run.
	assert.Contains(t, stderr, "tables failed: database unavailable")
	assert.Contains(t, stderr, "query failed: database unavailable")
	assert.Contains(t, stdout, "demo finished")
}
