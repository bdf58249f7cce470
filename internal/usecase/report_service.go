package usecase

import (
	"context"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// ReportService builds the daily flight report: flights departing on the
// reference day, still scheduled or boarding, joined with their gate and
// passengers.
type ReportService struct {
	flightRepo    repository.FlightRepository
	gateRepo      repository.GateRepository
	passengerRepo repository.PassengerRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewReportService creates a new report service
func NewReportService(
	flightRepo repository.FlightRepository,
	gateRepo repository.GateRepository,
	passengerRepo repository.PassengerRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ReportService {
	return &ReportService{
		flightRepo:    flightRepo,
		gateRepo:      gateRepo,
		passengerRepo: passengerRepo,
		metrics:       metrics,
		logger:        logger,
	}
}

// DailyFlights reports the flights departing within the day of ref, in ref's
// location. Every invocation runs one fresh pass over the store; nothing is
// cached.
func (s *ReportService) DailyFlights(ctx context.Context, ref time.Time) ([]*entity.FlightReportEntry, error) {
	year, month, day := ref.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 0, 1)

	flights, err := s.flightRepo.FindDepartingBetween(ctx, start, end, []string{
		entity.FlightStatusScheduled,
		entity.FlightStatusBoarding,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.FlightReportEntry, 0, len(flights))
	for _, flight := range flights {
		entry := &entity.FlightReportEntry{
			FlightID:      flight.ID,
			FlightNumber:  flight.FlightNumber,
			Origin:        flight.Origin,
			Destination:   flight.Destination,
			DepartureTime: flight.DepartureTime,
			ArrivalTime:   flight.ArrivalTime,
			Status:        flight.Status,
			Gate:          entity.ReportGateNA,
		}

		if flight.GateID != nil {
			gate, err := s.gateRepo.FindByID(ctx, *flight.GateID)
			if err != nil {
				return nil, err
			}
			if gate != nil {
				entry.Gate = &entity.ReportGate{
					ID:        gate.ID,
					Code:      gate.Code,
					Available: gate.Available,
				}
			}
		}

		passengers, err := s.passengerRepo.FindByFlight(ctx, flight.ID)
		if err != nil {
			return nil, err
		}
		entry.Passengers = make([]entity.ReportPassenger, 0, len(passengers))
		for _, p := range passengers {
			entry.Passengers = append(entry.Passengers, entity.ReportPassenger{
				ID:            p.ID,
				Name:          p.Name,
				CPF:           p.CPF,
				CheckInStatus: p.CheckInStatus,
			})
		}

		entries = append(entries, entry)
	}

	s.metrics.IncReportGenerated()
	s.logger.Info("Daily flight report generated", "date", start.Format("2006-01-02"), "flights", len(entries))
	return entries, nil
}
