package usecase

import (
	"context"
	"strings"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/utils"
)

// CreatePassengerInput carries the fields of a new passenger.
type CreatePassengerInput struct {
	Name          string
	CPF           string
	FlightID      string
	CheckInStatus string // defaults to pending
}

// UpdatePassengerInput carries a partial passenger update. Nil fields are
// left untouched; ClearFlight unbinds the flight explicitly.
type UpdatePassengerInput struct {
	Name          *string
	CPF           *string
	FlightID      *string
	ClearFlight   bool
	CheckInStatus *string
}

// PassengerService implements the passenger operations, including the
// check-in eligibility rule.
type PassengerService struct {
	passengerRepo repository.PassengerRepository
	flightRepo    repository.FlightRepository
	logger        logger.Logger
}

// NewPassengerService creates a new passenger service
func NewPassengerService(
	passengerRepo repository.PassengerRepository,
	flightRepo repository.FlightRepository,
	logger logger.Logger,
) *PassengerService {
	return &PassengerService{
		passengerRepo: passengerRepo,
		flightRepo:    flightRepo,
		logger:        logger,
	}
}

// Create validates and stores a new passenger bound to an existing flight.
func (s *PassengerService) Create(ctx context.Context, in CreatePassengerInput) (*entity.Passenger, error) {
	cpf := utils.NormalizeCPF(in.CPF)
	if !utils.IsValidCPF(cpf) {
		return nil, apperr.Validation("invalid CPF")
	}

	existing, err := s.passengerRepo.FindByCPF(ctx, cpf, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("a passenger with this CPF already exists")
	}

	flight, err := s.flightRepo.FindByID(ctx, in.FlightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, apperr.NotFound("flight not found")
	}

	status := in.CheckInStatus
	if status == "" {
		status = entity.CheckInPending
	}
	if !entity.IsValidCheckInStatus(status) {
		return nil, apperr.Validation("invalid check-in status")
	}

	flightID := in.FlightID
	passenger := &entity.Passenger{
		Name:          strings.TrimSpace(in.Name),
		CPF:           cpf,
		FlightID:      &flightID,
		CheckInStatus: status,
	}
	if err := s.passengerRepo.Insert(ctx, passenger); err != nil {
		return nil, err
	}

	s.logger.Info("Passenger created", "passengerId", passenger.ID, "flightId", flightID)
	return s.withFlight(ctx, passenger)
}

// List returns all passengers with their flights resolved.
func (s *PassengerService) List(ctx context.Context) ([]*entity.Passenger, error) {
	passengers, err := s.passengerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range passengers {
		if _, err := s.withFlight(ctx, p); err != nil {
			return nil, err
		}
	}
	return passengers, nil
}

// Get returns one passenger with their flight resolved.
func (s *PassengerService) Get(ctx context.Context, id string) (*entity.Passenger, error) {
	passenger, err := s.passengerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if passenger == nil {
		return nil, apperr.NotFound("passenger not found")
	}
	return s.withFlight(ctx, passenger)
}

// Update applies a partial update. Check-in may only move to done while the
// passenger's effective flight — the newly assigned one if it is changing,
// the current one otherwise — is boarding.
func (s *PassengerService) Update(ctx context.Context, id string, in UpdatePassengerInput) (*entity.Passenger, error) {
	passenger, err := s.passengerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if passenger == nil {
		return nil, apperr.NotFound("passenger not found")
	}

	if in.Name != nil {
		passenger.Name = strings.TrimSpace(*in.Name)
	}

	if in.CPF != nil {
		cpf := utils.NormalizeCPF(*in.CPF)
		if cpf != passenger.CPF {
			if !utils.IsValidCPF(cpf) {
				return nil, apperr.Validation("invalid CPF")
			}
			existing, err := s.passengerRepo.FindByCPF(ctx, cpf, id)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperr.Conflict("another passenger with this CPF already exists")
			}
		}
		passenger.CPF = cpf
	}

	if in.FlightID != nil && (passenger.FlightID == nil || *in.FlightID != *passenger.FlightID) {
		flight, err := s.flightRepo.FindByID(ctx, *in.FlightID)
		if err != nil {
			return nil, err
		}
		if flight == nil {
			return nil, apperr.NotFound("flight not found")
		}
	}

	mergedFlightID := passenger.FlightID
	if in.ClearFlight {
		mergedFlightID = nil
	} else if in.FlightID != nil {
		mergedFlightID = in.FlightID
	}

	if in.CheckInStatus != nil {
		if !entity.IsValidCheckInStatus(*in.CheckInStatus) {
			return nil, apperr.Validation("invalid check-in status")
		}
		if *in.CheckInStatus == entity.CheckInDone {
			if err := s.checkInAllowed(ctx, mergedFlightID); err != nil {
				return nil, err
			}
		}
		passenger.CheckInStatus = *in.CheckInStatus
	}
	passenger.FlightID = mergedFlightID

	if err := s.passengerRepo.Update(ctx, passenger); err != nil {
		return nil, err
	}

	s.logger.Info("Passenger updated", "passengerId", passenger.ID)
	return s.withFlight(ctx, passenger)
}

// Delete removes a passenger.
func (s *PassengerService) Delete(ctx context.Context, id string) error {
	passenger, err := s.passengerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if passenger == nil {
		return apperr.NotFound("passenger not found")
	}

	if err := s.passengerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Passenger deleted", "passengerId", id)
	return nil
}

// checkInAllowed enforces the check-in eligibility rule against the
// passenger's effective flight.
func (s *PassengerService) checkInAllowed(ctx context.Context, flightID *string) error {
	if flightID == nil {
		return apperr.NotFound("passenger has no flight for check-in validation")
	}
	flight, err := s.flightRepo.FindByID(ctx, *flightID)
	if err != nil {
		return err
	}
	if flight == nil {
		return apperr.NotFound("passenger's flight not found for check-in validation")
	}
	if flight.Status != entity.FlightStatusBoarding {
		return apperr.Validation("check-in not allowed: flight " + flight.FlightNumber + " is not boarding (current status: " + flight.Status + ")")
	}
	return nil
}

// withFlight resolves the passenger's flight reference (explicit read-time
// join).
func (s *PassengerService) withFlight(ctx context.Context, passenger *entity.Passenger) (*entity.Passenger, error) {
	if passenger.FlightID == nil {
		passenger.Flight = nil
		return passenger, nil
	}
	flight, err := s.flightRepo.FindByID(ctx, *passenger.FlightID)
	if err != nil {
		return nil, err
	}
	passenger.Flight = flight
	return passenger, nil
}
