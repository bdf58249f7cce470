package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-ops-service/internal/domain/entity"
)

func TestDailyFlightsWindowAndStatusFilter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	ref := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	midnight := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	inWindow := env.mustCreateFlight(t, flightInput("LA200", midnight.Add(9*time.Hour)))
	atMidnight := env.mustCreateFlight(t, flightInput("LA201", midnight))
	env.mustCreateFlight(t, flightInput("LA202", midnight.Add(-time.Minute)))    // previous day
	env.mustCreateFlight(t, flightInput("LA203", midnight.Add(24*time.Hour)))    // next day's midnight
	cancelled := env.mustCreateFlight(t, flightInput("LA204", midnight.Add(12*time.Hour)))
	_, err := env.flightSvc.Update(ctx, cancelled.ID, UpdateFlightInput{
		Status: strptr(entity.FlightStatusCancelled),
	})
	require.NoError(t, err)

	entries, err := env.reportSvc.DailyFlights(ctx, ref)
	require.NoError(t, err)

	ids := make(map[string]bool, len(entries))
	for _, e := range entries {
		ids[e.FlightID] = true
	}
	assert.Len(t, entries, 2)
	assert.True(t, ids[inWindow.ID])
	assert.True(t, ids[atMidnight.ID], "the day's midnight departure is included")
}

func TestDailyFlightsResolvesGateAndPassengers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	ref := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	gate := env.mustCreateGate(t, "A1")

	withGate := flightInput("LA210", ref.Add(time.Hour))
	withGate.GateID = &gate.ID
	flight := env.mustCreateFlight(t, withGate)
	env.mustCreateFlight(t, flightInput("LA211", ref.Add(2*time.Hour)))

	env.mustCreatePassenger(t, CreatePassengerInput{
		Name:     "Maria Silva",
		CPF:      "52998224725",
		FlightID: flight.ID,
	})

	entries, err := env.reportSvc.DailyFlights(ctx, ref)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := make(map[string]*entity.FlightReportEntry, len(entries))
	for _, e := range entries {
		byID[e.FlightID] = e
	}

	gated := byID[flight.ID]
	require.NotNil(t, gated)
	reportGate, ok := gated.Gate.(*entity.ReportGate)
	require.True(t, ok, "bound flight carries a resolved gate")
	assert.Equal(t, "A1", reportGate.Code)
	assert.False(t, reportGate.Available)
	require.Len(t, gated.Passengers, 1)
	assert.Equal(t, "Maria Silva", gated.Passengers[0].Name)
	assert.Equal(t, "52998224725", gated.Passengers[0].CPF)
	assert.Equal(t, entity.CheckInPending, gated.Passengers[0].CheckInStatus)

	for id, e := range byID {
		if id == flight.ID {
			continue
		}
		assert.Equal(t, entity.ReportGateNA, e.Gate, "unbound flight reports the N/A marker")
		assert.Empty(t, e.Passengers)
	}
}

// Each invocation is an independent pass over the store.
func TestDailyFlightsRestartable(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	ref := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	env.mustCreateFlight(t, flightInput("LA220", ref.Add(time.Hour)))

	first, err := env.reportSvc.DailyFlights(ctx, ref)
	require.NoError(t, err)
	require.Len(t, first, 1)

	env.mustCreateFlight(t, flightInput("LA221", ref.Add(2*time.Hour)))

	second, err := env.reportSvc.DailyFlights(ctx, ref)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}
