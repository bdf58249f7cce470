package repository

import (
	"context"
	"time"

	"airport-ops-service/internal/domain/entity"
)

// FlightRepository defines the store contract for flights. Lookups return
// (nil, nil) when no document matches.
type FlightRepository interface {
	Insert(ctx context.Context, flight *entity.Flight) error
	FindAll(ctx context.Context) ([]*entity.Flight, error)
	FindByID(ctx context.Context, id string) (*entity.Flight, error)
	// FindByNumber looks up a flight by its (uppercase) number, skipping the
	// document with excludeID when non-empty.
	FindByNumber(ctx context.Context, number, excludeID string) (*entity.Flight, error)
	// FindDepartingBetween returns flights with departureTime in [from, to)
	// and status in statuses.
	FindDepartingBetween(ctx context.Context, from, to time.Time, statuses []string) ([]*entity.Flight, error)
	Update(ctx context.Context, flight *entity.Flight) error
	Delete(ctx context.Context, id string) error
}
