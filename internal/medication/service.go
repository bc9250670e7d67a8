package medication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redmonkez12/glp1-companion/internal/logging"
	"github.com/redmonkez12/glp1-companion/internal/validation"
)

type Service struct {
	store  Store
	logger *logging.Logger
	now    func() time.Time
}

func NewService(store Store, logger *logging.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Now is the clock used for timestamps and next-dose computation
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (*Medication, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	m, err := s.store.Create(ctx, &Medication{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      in.Name,
		Dosage:    in.Dosage,
		Frequency: in.Frequency,
		TimeOfDay: in.TimeOfDay,
		IsActive:  active,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create medication: %w", err)
	}
	return m, nil
}

// List returns the user's active medications
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Medication, error) {
	meds, err := s.store.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return meds, nil
}

// Update applies a partial update to one of the user's medications.
// Ids that are unknown or owned by someone else yield ErrNotFound.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, patch Patch) (*Medication, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	m, err := s.store.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}

	patch.Apply(m)

	updated, err := s.store.Update(ctx, m)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update medication: %w", err)
	}

	if !updated.IsActive {
		s.logger.Debug("medication deactivated", "user_id", userID, "medication_id", id)
	}
	return updated, nil
}
