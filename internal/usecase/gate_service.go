package usecase

import (
	"context"
	"strings"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/internal/domain/repository"
	"airport-ops-service/pkg/apperr"
	"airport-ops-service/pkg/logger"
)

// UpdateGateInput carries a partial gate update. Available is only honored
// when the request actually supplied a boolean; anything else is ignored.
type UpdateGateInput struct {
	Code      *string
	Available *bool
}

// GateService implements the boarding-gate CRUD operations.
type GateService struct {
	gateRepo repository.GateRepository
	logger   logger.Logger
}

// NewGateService creates a new gate service
func NewGateService(gateRepo repository.GateRepository, logger logger.Logger) *GateService {
	return &GateService{
		gateRepo: gateRepo,
		logger:   logger,
	}
}

// Create stores a new gate. New gates start available.
func (s *GateService) Create(ctx context.Context, code string) (*entity.Gate, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	existing, err := s.gateRepo.FindByCode(ctx, code, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("a gate with this code already exists")
	}

	gate := &entity.Gate{
		Code:      code,
		Available: true,
	}
	if err := s.gateRepo.Insert(ctx, gate); err != nil {
		return nil, err
	}

	s.logger.Info("Gate created", "gateId", gate.ID, "code", gate.Code)
	return gate, nil
}

// List returns all gates.
func (s *GateService) List(ctx context.Context) ([]*entity.Gate, error) {
	return s.gateRepo.FindAll(ctx)
}

// Get returns one gate.
func (s *GateService) Get(ctx context.Context, id string) (*entity.Gate, error) {
	gate, err := s.gateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gate == nil {
		return nil, apperr.NotFound("boarding gate not found")
	}
	return gate, nil
}

// Update applies a partial update, re-checking code uniqueness when the code
// changes.
func (s *GateService) Update(ctx context.Context, id string, in UpdateGateInput) (*entity.Gate, error) {
	gate, err := s.gateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gate == nil {
		return nil, apperr.NotFound("boarding gate not found")
	}

	if in.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*in.Code))
		if code != gate.Code {
			existing, err := s.gateRepo.FindByCode(ctx, code, id)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, apperr.Conflict("another gate with this code already exists")
			}
		}
		gate.Code = code
	}
	if in.Available != nil {
		gate.Available = *in.Available
	}

	if err := s.gateRepo.Update(ctx, gate); err != nil {
		return nil, err
	}

	s.logger.Info("Gate updated", "gateId", gate.ID, "code", gate.Code, "available", gate.Available)
	return gate, nil
}

// Delete removes a gate. No check is made for flights still bound to it;
// flight documents keep a dangling reference that resolves to no gate.
func (s *GateService) Delete(ctx context.Context, id string) error {
	gate, err := s.gateRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if gate == nil {
		return apperr.NotFound("boarding gate not found")
	}

	if err := s.gateRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Gate deleted", "gateId", id)
	return nil
}
