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

func TestPassengerCreate(t *testing.T) {
	env := newTestEnv()
	flight := env.mustCreateFlight(t, flightInput("LA100", time.Now().Add(time.Hour)))

	passenger := env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "João Souza",
		CPF:      "529.982.247-25",
		FlightID: flight.ID,
	})

	assert.Equal(t, "52998224725", passenger.CPF, "CPF is stored digits-only")
	assert.Equal(t, entity.CheckInPending, passenger.CheckInStatus)
	require.NotNil(t, passenger.Flight)
	assert.Equal(t, "LA100", passenger.Flight.FlightNumber)
}

func TestPassengerCreateInvalidCPF(t *testing.T) {
	env := newTestEnv()
	flight := env.mustCreateFlight(t, flightInput("LA101", time.Now().Add(time.Hour)))

	for _, cpf := range []string{"52998224726", "11111111111", "123"} {
		_, err := env.paxSvc.Create(context.Background(), CreatePassengerInput{
			Name:     "João Souza",
			CPF:      cpf,
			FlightID: flight.ID,
		})
		require.Error(t, err, "cpf %q", cpf)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestPassengerCreateDuplicateCPF(t *testing.T) {
	env := newTestEnv()
	flight := env.mustCreateFlight(t, flightInput("LA102", time.Now().Add(time.Hour)))
	env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "João Souza",
		CPF:      "52998224725",
		FlightID: flight.ID,
	})

	// Same CPF with formatting differences still collides.
	_, err := env.paxSvc.Create(context.Background(), CreatePassengerInput{
		Name:     "Outro Nome",
		CPF:      "529.982.247-25",
		FlightID: flight.ID,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestPassengerCreateUnknownFlight(t *testing.T) {
	env := newTestEnv()

	_, err := env.paxSvc.Create(context.Background(), CreatePassengerInput{
		Name:     "João Souza",
		CPF:      "52998224725",
		FlightID: "656f1e4b2c3d4e5f60718293",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPassengerCheckInRequiresBoardingFlight(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	flight := env.mustCreateFlight(t, flightInput("LA103", time.Now().Add(time.Hour)))
	passenger := env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "Ana Lima",
		CPF:      "52998224725",
		FlightID: flight.ID,
	})

	// scheduled: rejected
	_, err := env.paxSvc.Update(ctx, passenger.ID, UpdatePassengerInput{
		CheckInStatus: strptr(entity.CheckInDone),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// boarding: accepted
	_, err = env.flightSvc.Update(ctx, flight.ID, UpdateFlightInput{
		Status: strptr(entity.FlightStatusBoarding),
	})
	require.NoError(t, err)

	updated, err := env.paxSvc.Update(ctx, passenger.ID, UpdatePassengerInput{
		CheckInStatus: strptr(entity.CheckInDone),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckInDone, updated.CheckInStatus)
}

// Check-in eligibility follows the flight being assigned in the same update,
// not the one the passenger held before.
func TestPassengerCheckInUsesEffectiveFlight(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	scheduled := env.mustCreateFlight(t, flightInput("LA104", time.Now().Add(time.Hour)))
	boarding := env.mustCreateFlight(t, flightInput("LA105", time.Now().Add(time.Hour)))
	_, err := env.flightSvc.Update(ctx, boarding.ID, UpdateFlightInput{
		Status: strptr(entity.FlightStatusBoarding),
	})
	require.NoError(t, err)

	passenger := env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "Ana Lima",
		CPF:      "52998224725",
		FlightID: scheduled.ID,
	})

	updated, err := env.paxSvc.Update(ctx, passenger.ID, UpdatePassengerInput{
		FlightID:      &boarding.ID,
		CheckInStatus: strptr(entity.CheckInDone),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckInDone, updated.CheckInStatus)
	require.NotNil(t, updated.FlightID)
	assert.Equal(t, boarding.ID, *updated.FlightID)
}

func TestPassengerCheckInWithoutFlight(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	flight := env.mustCreateFlight(t, flightInput("LA106", time.Now().Add(time.Hour)))
	passenger := env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "Ana Lima",
		CPF:      "52998224725",
		FlightID: flight.ID,
	})

	_, err := env.paxSvc.Update(ctx, passenger.ID, UpdatePassengerInput{
		ClearFlight:   true,
		CheckInStatus: strptr(entity.CheckInDone),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPassengerUpdateDuplicateCPF(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	flight := env.mustCreateFlight(t, flightInput("LA107", time.Now().Add(time.Hour)))
	env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "Ana Lima",
		CPF:      "52998224725",
		FlightID: flight.ID,
	})
	other := env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "João Souza",
		CPF:      "11144477735",
		FlightID: flight.ID,
	})

	_, err := env.paxSvc.Update(ctx, other.ID, UpdatePassengerInput{
		CPF: strptr("529.982.247-25"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestPassengerUpdateUnknownFlight(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	flight := env.mustCreateFlight(t, flightInput("LA108", time.Now().Add(time.Hour)))
	passenger := env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "Ana Lima",
		CPF:      "52998224725",
		FlightID: flight.ID,
	})

	_, err := env.paxSvc.Update(ctx, passenger.ID, UpdatePassengerInput{
		FlightID: strptr("656f1e4b2c3d4e5f60718293"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPassengerDelete(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	flight := env.mustCreateFlight(t, flightInput("LA109", time.Now().Add(time.Hour)))
	passenger := env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "Ana Lima",
		CPF:      "52998224725",
		FlightID: flight.ID,
	})

	require.NoError(t, env.paxSvc.Delete(ctx, passenger.ID))

	err := env.paxSvc.Delete(ctx, passenger.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
