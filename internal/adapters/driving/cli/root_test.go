package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driven"
	"github.com/smlsoft/smlgo-cli/internal/core/services"
)

// Ensure the fake satisfies the gateway port.
var _ driven.APIGateway = (*fakeGateway)(nil)

var errFakeUnreachable = errors.New("connection refused")

// fakeGateway returns canned responses so command tests run without a
// live service.
type fakeGateway struct {
	descriptor domain.ServiceDescriptor
	guideErr   error
	report     domain.HealthReport
	result     domain.Result

	lastTerm       string
	lastLimit      int
	lastProvinceID int
	lastAmphureID  int
	lastZipCode    int
}

func (g *fakeGateway) Guide(context.Context) (domain.ServiceDescriptor, error) {
	return g.descriptor, g.guideErr
}

func (g *fakeGateway) Health(context.Context) domain.HealthReport {
	return g.report
}

func (g *fakeGateway) ExecuteCommand(context.Context, string) domain.Result {
	return g.result
}

func (g *fakeGateway) ExecuteQuery(context.Context, string) domain.Result {
	return g.result
}

func (g *fakeGateway) Search(_ context.Context, term string, limit int) domain.Result {
	g.lastTerm = term
	g.lastLimit = limit
	return g.result
}

func (g *fakeGateway) Tables(context.Context) domain.Result {
	return g.result
}

func (g *fakeGateway) Provinces(context.Context) domain.Result {
	return g.result
}

func (g *fakeGateway) Amphures(_ context.Context, provinceID int) domain.Result {
	g.lastProvinceID = provinceID
	return g.result
}

func (g *fakeGateway) Tambons(_ context.Context, amphureID, provinceID int) domain.Result {
	g.lastAmphureID = amphureID
	g.lastProvinceID = provinceID
	return g.result
}

func (g *fakeGateway) FindByZipCode(_ context.Context, zipCode int) domain.Result {
	g.lastZipCode = zipCode
	return g.result
}

func (g *fakeGateway) Close() error {
	return nil
}

// setupTestServices wires the commands to a fake gateway through the real
// services, restoring the unwired state afterwards.
func setupTestServices(t *testing.T, gw *fakeGateway) {
	t.Helper()
	SetServices(
		gw,
		services.NewDiscoveryService(gw),
		services.NewDispatcherService(gw),
		services.NewAdminService(gw),
	)
	t.Cleanup(func() {
		SetServices(nil, nil, nil, nil)
	})
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}
