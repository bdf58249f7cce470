// Package memory provides in-memory repository implementations with the same
// observable behavior as the MongoDB ones, including unique-index conflicts.
// They back the test suites and are handy for local runs without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlightRepository is an in-memory FlightRepository.
type FlightRepository struct {
	mu      sync.RWMutex
	flights map[string]*entity.Flight
}

// NewFlightRepository creates an empty in-memory flight repository.
func NewFlightRepository() *FlightRepository {
	return &FlightRepository{flights: make(map[string]*entity.Flight)}
}

func (r *FlightRepository) Insert(ctx context.Context, flight *entity.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.flights {
		if f.FlightNumber == flight.FlightNumber {
			return apperr.Conflict("a flight with this number already exists")
		}
	}

	now := time.Now()
	flight.ID = primitive.NewObjectID().Hex()
	flight.CreatedAt = now
	flight.UpdatedAt = now

	stored := *flight
	r.flights[flight.ID] = &stored
	return nil
}

func (r *FlightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		copied := *f
		out = append(out, &copied)
	}
	return out, nil
}

func (r *FlightRepository) FindByID(ctx context.Context, id string) (*entity.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flights[id]
	if !ok {
		return nil, nil
	}
	copied := *f
	return &copied, nil
}

func (r *FlightRepository) FindByNumber(ctx context.Context, number, excludeID string) (*entity.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.flights {
		if f.FlightNumber == number && f.ID != excludeID {
			copied := *f
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *FlightRepository) FindDepartingBetween(ctx context.Context, from, to time.Time, statuses []string) ([]*entity.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Flight
	for _, f := range r.flights {
		if f.DepartureTime.Before(from) || !f.DepartureTime.Before(to) {
			continue
		}
		for _, s := range statuses {
			if f.Status == s {
				copied := *f
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (r *FlightRepository) Update(ctx context.Context, flight *entity.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[flight.ID]; !ok {
		return apperr.NotFound("flight not found")
	}
	for _, f := range r.flights {
		if f.FlightNumber == flight.FlightNumber && f.ID != flight.ID {
			return apperr.Conflict("a flight with this number already exists")
		}
	}

	flight.UpdatedAt = time.Now()
	stored := *flight
	r.flights[flight.ID] = &stored
	return nil
}

func (r *FlightRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[id]; !ok {
		return apperr.NotFound("flight not found")
	}
	delete(r.flights, id)
	return nil
}

// GateRepository is an in-memory GateRepository.
type GateRepository struct {
	mu    sync.RWMutex
	gates map[string]*entity.Gate
}

// NewGateRepository creates an empty in-memory gate repository.
func NewGateRepository() *GateRepository {
	return &GateRepository{gates: make(map[string]*entity.Gate)}
}

func (r *GateRepository) Insert(ctx context.Context, gate *entity.Gate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.gates {
		if g.Code == gate.Code {
			return apperr.Conflict("a gate with this code already exists")
		}
	}

	now := time.Now()
	gate.ID = primitive.NewObjectID().Hex()
	gate.CreatedAt = now
	gate.UpdatedAt = now

	stored := *gate
	r.gates[gate.ID] = &stored
	return nil
}

func (r *GateRepository) FindAll(ctx context.Context) ([]*entity.Gate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Gate, 0, len(r.gates))
	for _, g := range r.gates {
		copied := *g
		out = append(out, &copied)
	}
	return out, nil
}

func (r *GateRepository) FindByID(ctx context.Context, id string) (*entity.Gate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.gates[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (r *GateRepository) FindByCode(ctx context.Context, code, excludeID string) (*entity.Gate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.gates {
		if g.Code == code && g.ID != excludeID {
			copied := *g
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *GateRepository) Update(ctx context.Context, gate *entity.Gate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gates[gate.ID]; !ok {
		return apperr.NotFound("boarding gate not found")
	}
	for _, g := range r.gates {
		if g.Code == gate.Code && g.ID != gate.ID {
			return apperr.Conflict("a gate with this code already exists")
		}
	}

	gate.UpdatedAt = time.Now()
	stored := *gate
	r.gates[gate.ID] = &stored
	return nil
}

func (r *GateRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.gates[id]; ok {
		g.Available = available
		g.UpdatedAt = time.Now()
	}
	return nil
}

func (r *GateRepository) ClaimIfAvailable(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.gates[id]
	if !ok || !g.Available {
		return false, nil
	}
	g.Available = false
	g.UpdatedAt = time.Now()
	return true, nil
}

func (r *GateRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gates[id]; !ok {
		return apperr.NotFound("boarding gate not found")
	}
	delete(r.gates, id)
	return nil
}

// PassengerRepository is an in-memory PassengerRepository.
type PassengerRepository struct {
	mu         sync.RWMutex
	passengers map[string]*entity.Passenger
}

// NewPassengerRepository creates an empty in-memory passenger repository.
func NewPassengerRepository() *PassengerRepository {
	return &PassengerRepository{passengers: make(map[string]*entity.Passenger)}
}

func (r *PassengerRepository) Insert(ctx context.Context, passenger *entity.Passenger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.passengers {
		if p.CPF == passenger.CPF {
			return apperr.Conflict("a passenger with this CPF already exists")
		}
	}

	now := time.Now()
	passenger.ID = primitive.NewObjectID().Hex()
	passenger.CreatedAt = now
	passenger.UpdatedAt = now
	if passenger.CheckInStatus == "" {
		passenger.CheckInStatus = entity.CheckInPending
	}

	stored := *passenger
	r.passengers[passenger.ID] = &stored
	return nil
}

func (r *PassengerRepository) FindAll(ctx context.Context) ([]*entity.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Passenger, 0, len(r.passengers))
	for _, p := range r.passengers {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *PassengerRepository) FindByID(ctx context.Context, id string) (*entity.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.passengers[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *PassengerRepository) FindByCPF(ctx context.Context, cpf, excludeID string) (*entity.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.passengers {
		if p.CPF == cpf && p.ID != excludeID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *PassengerRepository) FindByFlight(ctx context.Context, flightID string) ([]*entity.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Passenger
	for _, p := range r.passengers {
		if p.FlightID != nil && *p.FlightID == flightID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *PassengerRepository) Update(ctx context.Context, passenger *entity.Passenger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.passengers[passenger.ID]; !ok {
		return apperr.NotFound("passenger not found")
	}
	for _, p := range r.passengers {
		if p.CPF == passenger.CPF && p.ID != passenger.ID {
			return apperr.Conflict("a passenger with this CPF already exists")
		}
	}

	passenger.UpdatedAt = time.Now()
	stored := *passenger
	r.passengers[passenger.ID] = &stored
	return nil
}

func (r *PassengerRepository) DetachAllFromFlight(ctx context.Context, flightID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.passengers {
		if p.FlightID != nil && *p.FlightID == flightID {
			p.FlightID = nil
			p.CheckInStatus = entity.CheckInPending
			p.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (r *PassengerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.passengers[id]; !ok {
		return apperr.NotFound("passenger not found")
	}
	delete(r.passengers, id)
	return nil
}
