package usecase

import (
	"context"
	"fmt"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// GateAllocator keeps gate availability consistent with flight lifecycle
// transitions. It is the only place that flips a gate's availability in
// response to flight events.
type GateAllocator struct {
	flightRepo repository.FlightRepository
	gateRepo   repository.GateRepository
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewGateAllocator creates a new gate allocator
func NewGateAllocator(
	flightRepo repository.FlightRepository,
	gateRepo repository.GateRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *GateAllocator {
	return &GateAllocator{
		flightRepo: flightRepo,
		gateRepo:   gateRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Reconcile updates gate availability for a flight transition. flightID is
// empty when the flight is being created; newGateID and newStatus are the
// flight's effective gate and status after the transition.
//
// The previous gate is released before the new one is claimed. Claiming a
// gate the flight does not already hold goes through a compare-and-swap
// update, so a concurrent claim on the same gate loses cleanly instead of
// double-booking it. Failures surface as validation errors for the caller to
// reject the whole transition; the flight record itself is never written
// here.
func (a *GateAllocator) Reconcile(ctx context.Context, flightID string, newGateID *string, newStatus string) error {
	var prevGateID *string
	if flightID != "" {
		existing, err := a.flightRepo.FindByID(ctx, flightID)
		if err != nil {
			return fmt.Errorf("failed to load flight for gate reconciliation: %w", err)
		}
		if existing != nil {
			prevGateID = existing.GateID
		}
	}

	// Release the previous gate when the flight is moving off it.
	if prevGateID != nil && (newGateID == nil || *prevGateID != *newGateID) {
		if err := a.gateRepo.SetAvailability(ctx, *prevGateID, true); err != nil {
			return fmt.Errorf("failed to release gate %s: %w", *prevGateID, err)
		}
		a.metrics.IncGateRelease()
		a.logger.Info("Released boarding gate", "gateId", *prevGateID, "flightId", flightID)
	}

	if newGateID == nil {
		return nil
	}

	if entity.IsTerminalStatus(newStatus) {
		// A flight in a terminal status never occupies its gate.
		if err := a.gateRepo.SetAvailability(ctx, *newGateID, true); err != nil {
			return fmt.Errorf("failed to release gate %s: %w", *newGateID, err)
		}
		a.metrics.IncGateRelease()
		a.logger.Info("Released boarding gate of terminal flight", "gateId", *newGateID, "status", newStatus)
		return nil
	}

	gate, err := a.gateRepo.FindByID(ctx, *newGateID)
	if err != nil {
		return fmt.Errorf("failed to load gate %s: %w", *newGateID, err)
	}
	if gate == nil {
		a.metrics.IncGateConflict()
		return apperr.Validation("boarding gate not found for assignment")
	}

	if prevGateID != nil && *prevGateID == *newGateID {
		// Re-claim of the gate the flight already holds; keeping it
		// unavailable is a no-op-safe write.
		if err := a.gateRepo.SetAvailability(ctx, *newGateID, false); err != nil {
			return fmt.Errorf("failed to claim gate %s: %w", *newGateID, err)
		}
		return nil
	}

	claimed, err := a.gateRepo.ClaimIfAvailable(ctx, *newGateID)
	if err != nil {
		return fmt.Errorf("failed to claim gate %s: %w", *newGateID, err)
	}
	if !claimed {
		a.metrics.IncGateConflict()
		return apperr.Validation("boarding gate is not available")
	}
	a.metrics.IncGateClaim()
	a.logger.Info("Claimed boarding gate", "gateId", *newGateID, "flightId", flightID)
	return nil
}
