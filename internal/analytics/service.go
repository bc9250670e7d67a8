package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redmonkez12/glp1-companion/internal/content"
	"github.com/redmonkez12/glp1-companion/internal/symptom"
)

type Service struct {
	symptoms symptom.Store
	catalog  content.Catalog
	now      func() time.Time
}

func NewService(symptoms symptom.Store, catalog content.Catalog) *Service {
	return &Service{
		symptoms: symptoms,
		catalog:  catalog,
		now:      time.Now,
	}
}

// DashboardStats recomputes the user's summary card from storage
func (s *Service) DashboardStats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	now := s.now()

	entries, err := s.symptoms.ListSince(ctx, userID, now.Add(-statsWindow))
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load recent symptoms: %w", err)
	}

	catalogSize, err := s.catalog.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count content: %w", err)
	}

	return DashboardStats(entries, catalogSize, now), nil
}

// Progress classifies the user's full history for each tracked symptom
func (s *Service) Progress(ctx context.Context, userID uuid.UUID) (map[symptom.Symptom]SymptomProgress, error) {
	entries, err := s.symptoms.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load symptoms: %w", err)
	}
	return SymptomProgressByCategory(entries), nil
}
