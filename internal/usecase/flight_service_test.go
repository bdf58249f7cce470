package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/pkg/apperr"
)

func TestFlightCreateNormalizesAndDefaults(t *testing.T) {
	env := newTestEnv()

	flight := env.mustCreateFlight(t, CreateFlightInput{
		FlightNumber:  "la3001",
		Origin:        "gru",
		Destination:   "sdu",
		DepartureTime: time.Now().Add(2 * time.Hour),
		ArrivalTime:   time.Now().Add(3 * time.Hour),
	})

	assert.Equal(t, "LA3001", flight.FlightNumber)
	assert.Equal(t, "GRU", flight.Origin)
	assert.Equal(t, "SDU", flight.Destination)
	assert.Equal(t, entity.FlightStatusScheduled, flight.Status)
	assert.NotEmpty(t, flight.ID)
}

func TestFlightCreateDuplicateNumberCaseInsensitive(t *testing.T) {
	env := newTestEnv()
	env.mustCreateFlight(t, flightInput("LA3001", time.Now().Add(time.Hour)))

	_, err := env.flightSvc.Create(context.Background(), flightInput("la3001", time.Now().Add(time.Hour)))
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestFlightCreateRejectsBadDates(t *testing.T) {
	env := newTestEnv()
	departure := time.Now().Add(time.Hour)

	equal := flightInput("LA1", departure)
	equal.ArrivalTime = departure
	_, err := env.flightSvc.Create(context.Background(), equal)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	inverted := flightInput("LA2", departure)
	inverted.ArrivalTime = departure.Add(-time.Minute)
	_, err = env.flightSvc.Create(context.Background(), inverted)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestFlightCreateRejectsInvalidStatus(t *testing.T) {
	env := newTestEnv()
	in := flightInput("LA3", time.Now().Add(time.Hour))
	in.Status = "airborne"

	_, err := env.flightSvc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestFlightCreateWithGateAttachesIt(t *testing.T) {
	env := newTestEnv()
	gate := env.mustCreateGate(t, "A1")

	in := flightInput("LA4", time.Now().Add(time.Hour))
	in.GateID = &gate.ID
	flight := env.mustCreateFlight(t, in)

	require.NotNil(t, flight.Gate)
	assert.Equal(t, "A1", flight.Gate.Code)
	assert.False(t, env.gateByID(t, gate.ID).Available)
}

func TestFlightCreateInTerminalStatusLeavesGateFree(t *testing.T) {
	env := newTestEnv()
	gate := env.mustCreateGate(t, "A2")

	in := flightInput("LA5", time.Now().Add(time.Hour))
	in.GateID = &gate.ID
	in.Status = entity.FlightStatusCancelled
	env.mustCreateFlight(t, in)

	assert.True(t, env.gateByID(t, gate.ID).Available)
}

func TestFlightGetUnknown(t *testing.T) {
	env := newTestEnv()

	_, err := env.flightSvc.Get(context.Background(), "656f1e4b2c3d4e5f60718293")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestFlightUpdateStatusOnlyKeepsGateClaimed(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	gate := env.mustCreateGate(t, "B1")

	in := flightInput("LA6", time.Now().Add(time.Hour))
	in.GateID = &gate.ID
	flight := env.mustCreateFlight(t, in)

	updated, err := env.flightSvc.Update(ctx, flight.ID, UpdateFlightInput{
		Status: strptr(entity.FlightStatusBoarding),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.FlightStatusBoarding, updated.Status)
	require.NotNil(t, updated.GateID)
	assert.Equal(t, gate.ID, *updated.GateID)
	assert.False(t, env.gateByID(t, gate.ID).Available)
}

func TestFlightUpdateToCancelledReleasesGate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	gate := env.mustCreateGate(t, "B2")

	in := flightInput("LA7", time.Now().Add(time.Hour))
	in.GateID = &gate.ID
	flight := env.mustCreateFlight(t, in)
	require.False(t, env.gateByID(t, gate.ID).Available)

	_, err := env.flightSvc.Update(ctx, flight.ID, UpdateFlightInput{
		Status: strptr(entity.FlightStatusCancelled),
	})
	require.NoError(t, err)

	assert.True(t, env.gateByID(t, gate.ID).Available)
}

func TestFlightUpdateRejectsOccupiedGate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	gate := env.mustCreateGate(t, "B3")

	inA := flightInput("LA8", time.Now().Add(time.Hour))
	inA.GateID = &gate.ID
	env.mustCreateFlight(t, inA)

	flightB := env.mustCreateFlight(t, flightInput("LA9", time.Now().Add(time.Hour)))

	_, err := env.flightSvc.Update(ctx, flightB.ID, UpdateFlightInput{GateID: &gate.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Flight B stays unbound; the gate stays claimed.
	stored, err := env.flights.FindByID(ctx, flightB.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.GateID)
	assert.False(t, env.gateByID(t, gate.ID).Available)
}

func TestFlightUpdateMergedDatesValidated(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	departure := time.Now().Add(4 * time.Hour)
	flight := env.mustCreateFlight(t, flightInput("LA10", departure))

	// New arrival earlier than the existing departure.
	bad := departure.Add(-time.Hour)
	_, err := env.flightSvc.Update(ctx, flight.ID, UpdateFlightInput{ArrivalTime: &bad})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestFlightUpdateDuplicateNumber(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.mustCreateFlight(t, flightInput("LA11", time.Now().Add(time.Hour)))
	flight := env.mustCreateFlight(t, flightInput("LA12", time.Now().Add(time.Hour)))

	_, err := env.flightSvc.Update(ctx, flight.ID, UpdateFlightInput{FlightNumber: strptr("la11")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestFlightDeleteReleasesGateAndDetachesPassengers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	gate := env.mustCreateGate(t, "C1")

	in := flightInput("LA13", time.Now().Add(time.Hour))
	in.GateID = &gate.ID
	flight := env.mustCreateFlight(t, in)

	passenger := env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "Maria Silva",
		CPF:      "52998224725",
		FlightID: flight.ID,
	})

	// Board the flight and check the passenger in before deleting.
	_, err := env.flightSvc.Update(ctx, flight.ID, UpdateFlightInput{
		Status: strptr(entity.FlightStatusBoarding),
	})
	require.NoError(t, err)
	_, err = env.paxSvc.Update(ctx, passenger.ID, UpdatePassengerInput{
		CheckInStatus: strptr(entity.CheckInDone),
	})
	require.NoError(t, err)

	require.NoError(t, env.flightSvc.Delete(ctx, flight.ID))

	assert.True(t, env.gateByID(t, gate.ID).Available)

	detached, err := env.passengers.FindByID(ctx, passenger.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.FlightID)
	assert.Equal(t, entity.CheckInPending, detached.CheckInStatus)

	gone, err := env.flights.FindByID(ctx, flight.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
