package repository

import (
	"context"

	"airport-ops-service/internal/domain/entity"
)

// GateRepository defines the store contract for boarding gates. Lookups return
// (nil, nil) when no document matches.
type GateRepository interface {
	Insert(ctx context.Context, gate *entity.Gate) error
	FindAll(ctx context.Context) ([]*entity.Gate, error)
	FindByID(ctx context.Context, id string) (*entity.Gate, error)
	// FindByCode looks up a gate by its (uppercase) code, skipping the
	// document with excludeID when non-empty.
	FindByCode(ctx context.Context, code, excludeID string) (*entity.Gate, error)
	Update(ctx context.Context, gate *entity.Gate) error
	// SetAvailability writes the availability flag unconditionally.
	SetAvailability(ctx context.Context, id string, available bool) error
	// ClaimIfAvailable atomically flips the gate to unavailable, but only if
	// it is currently available. It reports whether the claim took effect.
	ClaimIfAvailable(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}
