package usecase

import (
	"context"
	"strings"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/logger"
)

// CreateFlightInput carries the fields of a new flight.
type CreateFlightInput struct {
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	GateID        *string
	Status        string // defaults to scheduled
}

// UpdateFlightInput carries a partial flight update. Nil fields are left
// untouched; ClearGate unbinds the gate explicitly.
type UpdateFlightInput struct {
	FlightNumber  *string
	Origin        *string
	Destination   *string
	DepartureTime *time.Time
	ArrivalTime   *time.Time
	GateID        *string
	ClearGate     bool
	Status        *string
}

// FlightService implements the flight operations, delegating all gate
// availability changes to the GateAllocator.
type FlightService struct {
	flightRepo    repository.FlightRepository
	gateRepo      repository.GateRepository
	passengerRepo repository.PassengerRepository
	allocator     *GateAllocator
	logger        logger.Logger
}

// NewFlightService creates a new flight service
func NewFlightService(
	flightRepo repository.FlightRepository,
	gateRepo repository.GateRepository,
	passengerRepo repository.PassengerRepository,
	allocator *GateAllocator,
	logger logger.Logger,
) *FlightService {
	return &FlightService{
		flightRepo:    flightRepo,
		gateRepo:      gateRepo,
		passengerRepo: passengerRepo,
		allocator:     allocator,
		logger:        logger,
	}
}

// Create validates and stores a new flight, claiming its gate first.
func (s *FlightService) Create(ctx context.Context, in CreateFlightInput) (*entity.Flight, error) {
	number := strings.ToUpper(strings.TrimSpace(in.FlightNumber))
	origin := strings.ToUpper(strings.TrimSpace(in.Origin))
	destination := strings.ToUpper(strings.TrimSpace(in.Destination))

	status := in.Status
	if status == "" {
		status = entity.FlightStatusScheduled
	}
	if !entity.IsValidFlightStatus(status) {
		return nil, apperr.Validation("invalid flight status")
	}

	if !in.DepartureTime.Before(in.ArrivalTime) {
		return nil, apperr.Validation("arrival time must be after departure time")
	}

	existing, err := s.flightRepo.FindByNumber(ctx, number, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("a flight with this number already exists")
	}

	if in.GateID != nil {
		if err := s.allocator.Reconcile(ctx, "", in.GateID, status); err != nil {
			return nil, err
		}
	}

	flight := &entity.Flight{
		FlightNumber:  number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: in.DepartureTime,
		ArrivalTime:   in.ArrivalTime,
		GateID:        in.GateID,
		Status:        status,
	}
	if err := s.flightRepo.Insert(ctx, flight); err != nil {
		return nil, err
	}

	s.logger.Info("Flight created", "flightId", flight.ID, "flightNumber", flight.FlightNumber)
	return s.withGate(ctx, flight)
}

// List returns all flights with their gates resolved.
func (s *FlightService) List(ctx context.Context) ([]*entity.Flight, error) {
	flights, err := s.flightRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range flights {
		if _, err := s.withGate(ctx, f); err != nil {
			return nil, err
		}
	}
	return flights, nil
}

// Get returns one flight with its gate resolved.
func (s *FlightService) Get(ctx context.Context, id string) (*entity.Flight, error) {
	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, apperr.NotFound("flight not found")
	}
	return s.withGate(ctx, flight)
}

// Update applies a partial update. The gate allocator runs on the merged gate
// and status before the flight record is persisted, so a rejected gate
// transition leaves the flight untouched.
func (s *FlightService) Update(ctx context.Context, id string, in UpdateFlightInput) (*entity.Flight, error) {
	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, apperr.NotFound("flight not found")
	}

	if in.FlightNumber != nil {
		number := strings.ToUpper(strings.TrimSpace(*in.FlightNumber))
		if number != flight.FlightNumber {
			existing, err := s.flightRepo.FindByNumber(ctx, number, id)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperr.Conflict("another flight with this number already exists")
			}
		}
		flight.FlightNumber = number
	}
	if in.Origin != nil {
		flight.Origin = strings.ToUpper(strings.TrimSpace(*in.Origin))
	}
	if in.Destination != nil {
		flight.Destination = strings.ToUpper(strings.TrimSpace(*in.Destination))
	}
	if in.DepartureTime != nil {
		flight.DepartureTime = *in.DepartureTime
	}
	if in.ArrivalTime != nil {
		flight.ArrivalTime = *in.ArrivalTime
	}
	if !flight.DepartureTime.Before(flight.ArrivalTime) {
		return nil, apperr.Validation("arrival time must be after departure time")
	}

	if in.Status != nil {
		if !entity.IsValidFlightStatus(*in.Status) {
			return nil, apperr.Validation("invalid flight status")
		}
		flight.Status = *in.Status
	}

	mergedGateID := flight.GateID
	if in.ClearGate {
		mergedGateID = nil
	} else if in.GateID != nil {
		mergedGateID = in.GateID
	}

	if err := s.allocator.Reconcile(ctx, id, mergedGateID, flight.Status); err != nil {
		return nil, err
	}
	flight.GateID = mergedGateID

	if err := s.flightRepo.Update(ctx, flight); err != nil {
		return nil, err
	}

	s.logger.Info("Flight updated", "flightId", flight.ID, "status", flight.Status)
	return s.withGate(ctx, flight)
}

// Delete removes a flight, releasing its gate and detaching its passengers.
// Passengers are kept with a nulled flight reference and a pending check-in.
func (s *FlightService) Delete(ctx context.Context, id string) error {
	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if flight == nil {
		return apperr.NotFound("flight not found")
	}

	if flight.GateID != nil {
		if err := s.gateRepo.SetAvailability(ctx, *flight.GateID, true); err != nil {
			return err
		}
	}
	if err := s.passengerRepo.DetachAllFromFlight(ctx, id); err != nil {
		return err
	}
	if err := s.flightRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Flight deleted", "flightId", id)
	return nil
}

// withGate resolves the flight's gate reference (explicit read-time join).
func (s *FlightService) withGate(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	if flight.GateID == nil {
		flight.Gate = nil
		return flight, nil
	}
	gate, err := s.gateRepo.FindByID(ctx, *flight.GateID)
	if err != nil {
		return nil, err
	}
	flight.Gate = gate
	return flight, nil
}
