package symptom

import (
	"context"
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

// Log validates and records a new entry stamped with the current time
func (s *Service) Log(ctx context.Context, userID uuid.UUID, in LogInput) (*Entry, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	entry, err := s.store.Create(ctx, &Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Symptom:   in.Symptom,
		Severity:  in.Severity,
		Notes:     in.Notes,
		Timestamp: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log symptom: %w", err)
	}

	s.logger.Debug("symptom logged", "user_id", userID, "symptom", entry.Symptom, "severity", entry.Severity)
	return entry, nil
}

// List returns the user's entries newest first. limit <= 0 means no limit.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error) {
	entries, err := s.store.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list symptoms: %w", err)
	}
	return entries, nil
}
