package repository

import (
	"context"

	"airport-ops-service/internal/domain/entity"
)

// PassengerRepository defines the store contract for passengers. Lookups
// return (nil, nil) when no document matches.
type PassengerRepository interface {
	Insert(ctx context.Context, passenger *entity.Passenger) error
	FindAll(ctx context.Context) ([]*entity.Passenger, error)
	FindByID(ctx context.Context, id string) (*entity.Passenger, error)
	// FindByCPF looks up a passenger by CPF, skipping the document with
	// excludeID when non-empty.
	FindByCPF(ctx context.Context, cpf, excludeID string) (*entity.Passenger, error)
	FindByFlight(ctx context.Context, flightID string) ([]*entity.Passenger, error)
	Update(ctx context.Context, passenger *entity.Passenger) error
	// DetachAllFromFlight clears the flight reference of every passenger on
	// the given flight and resets their check-in to pending.
	DetachAllFromFlight(ctx context.Context, flightID string) error
	Delete(ctx context.Context, id string) error
}
