package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/interface/repository/memory"
	"airport-ops-service/pkg/logger"
)

// testEnv wires the services over in-memory repositories.
type testEnv struct {
	flights    *memory.FlightRepository
	gates      *memory.GateRepository
	passengers *memory.PassengerRepository

	allocator  *GateAllocator
	flightSvc  *FlightService
	gateSvc    *GateService
	paxSvc     *PassengerService
	reportSvc  *ReportService
}

func newTestEnv() *testEnv {
	log := logger.NewNop()
	flights := memory.NewFlightRepository()
	gates := memory.NewGateRepository()
	passengers := memory.NewPassengerRepository()

	allocator := NewGateAllocator(flights, gates, nil, log)
	return &testEnv{
		flights:    flights,
		gates:      gates,
		passengers: passengers,
		allocator:  allocator,
		flightSvc:  NewFlightService(flights, gates, passengers, allocator, log),
		gateSvc:    NewGateService(gates, log),
		paxSvc:     NewPassengerService(passengers, flights, log),
		reportSvc:  NewReportService(flights, gates, passengers, nil, log),
	}
}

func (e *testEnv) mustCreateGate(t *testing.T, code string) *entity.Gate {
	t.Helper()
	gate, err := e.gateSvc.Create(context.Background(), code)
	require.NoError(t, err)
	return gate
}

func (e *testEnv) mustCreateFlight(t *testing.T, in CreateFlightInput) *entity.Flight {
	t.Helper()
	flight, err := e.flightSvc.Create(context.Background(), in)
	require.NoError(t, err)
	return flight
}

func (e *testEnv) mustCreatePassenger(t *testing.T, in CreatePassengerInput) *entity.Passenger {
	t.Helper()
	passenger, err := e.paxSvc.Create(context.Background(), in)
	require.NoError(t, err)
	return passenger
}

func (e *testEnv) gateByID(t *testing.T, id string) *entity.Gate {
	t.Helper()
	gate, err := e.gates.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, gate)
	return gate
}

// flightInput builds a valid creation input departing at the given time.
func flightInput(number string, departure time.Time) CreateFlightInput {
	return CreateFlightInput{
		FlightNumber:  number,
		Origin:        "GRU",
		Destination:   "GIG",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(time.Hour),
	}
}

func strptr(s string) *string { return &s }
