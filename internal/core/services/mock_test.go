package services

import (
	"context"
	"errors"

	"github.com/smlsoft/smlgo-cli/internal/core/domain"
	"github.com/smlsoft/smlgo-cli/internal/core/ports/driven"
)

// Ensure the stub satisfies the gateway port.
var _ driven.APIGateway = (*stubGateway)(nil)

// stubGateway counts calls and returns canned responses, so tests can
// assert which operations reached the transport layer.
type stubGateway struct {
	guideCalls    int
	healthCalls   int
	commandCalls  int
	queryCalls    int
	searchCalls   int
	tablesCalls   int
	provinceCalls int
	amphureCalls  int
	tambonCalls   int
	zipCodeCalls  int

	descriptor domain.ServiceDescriptor
	guideErr   error
	report     domain.HealthReport
	result     domain.Result

	lastStatement  string
	lastQuery      string
	lastTerm       string
	lastLimit      int
	lastProvinceID int
	lastAmphureID  int
	lastZipCode    int
}

func (g *stubGateway) Guide(context.Context) (domain.ServiceDescriptor, error) {
	g.guideCalls++
	return g.descriptor, g.guideErr
}

func (g *stubGateway) Health(context.Context) domain.HealthReport {
	g.healthCalls++
	return g.report
}

func (g *stubGateway) ExecuteCommand(_ context.Context, statement string) domain.Result {
	g.commandCalls++
	g.lastStatement = statement
	return g.result
}

func (g *stubGateway) ExecuteQuery(_ context.Context, query string) domain.Result {
	g.queryCalls++
	g.lastQuery = query
	return g.result
}

func (g *stubGateway) Search(_ context.Context, term string, limit int) domain.Result {
	g.searchCalls++
	g.lastTerm = term
	g.lastLimit = limit
	return g.result
}

func (g *stubGateway) Tables(context.Context) domain.Result {
	g.tablesCalls++
	return g.result
}

func (g *stubGateway) Provinces(context.Context) domain.Result {
	g.provinceCalls++
	return g.result
}

func (g *stubGateway) Amphures(_ context.Context, provinceID int) domain.Result {
	g.amphureCalls++
	g.lastProvinceID = provinceID
	return g.result
}

func (g *stubGateway) Tambons(_ context.Context, amphureID, provinceID int) domain.Result {
	g.tambonCalls++
	g.lastAmphureID = amphureID
	g.lastProvinceID = provinceID
	return g.result
}

func (g *stubGateway) FindByZipCode(_ context.Context, zipCode int) domain.Result {
	g.zipCodeCalls++
	g.lastZipCode = zipCode
	return g.result
}

func (g *stubGateway) Close() error {
	return nil
}

// totalCalls sums every transport-facing counter.
func (g *stubGateway) totalCalls() int {
	return g.guideCalls + g.healthCalls + g.commandCalls + g.queryCalls +
		g.searchCalls + g.tablesCalls + g.provinceCalls + g.amphureCalls +
		g.tambonCalls + g.zipCodeCalls
}

var errStubUnreachable = errors.New("connection refused")
