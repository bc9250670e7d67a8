package medication

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]Medication
	order []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[uuid.UUID]Medication)}
}

func (s *MemoryStore) Create(ctx context.Context, m *Medication) (*Medication, error) {
	stored := cloneMedication(*m)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	s.mu.Lock()
	s.byID[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	s.mu.Unlock()

	out := cloneMedication(stored)
	return &out, nil
}

// ListActive returns the user's active medications, oldest first
func (s *MemoryStore) ListActive(ctx context.Context, userID uuid.UUID) ([]Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Medication, 0)
	for _, id := range s.order {
		m := s.byID[id]
		if m.UserID == userID && m.IsActive {
			out = append(out, cloneMedication(m))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, userID, id uuid.UUID) (*Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byID[id]
	if !ok || m.UserID != userID {
		return nil, ErrNotFound
	}
	out := cloneMedication(m)
	return &out, nil
}

func (s *MemoryStore) Update(ctx context.Context, m *Medication) (*Medication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byID[m.ID]
	if !ok || existing.UserID != m.UserID {
		return nil, ErrNotFound
	}

	updated := cloneMedication(*m)
	updated.CreatedAt = existing.CreatedAt
	s.byID[m.ID] = updated

	out := cloneMedication(updated)
	return &out, nil
}

func cloneMedication(m Medication) Medication {
	if m.TimeOfDay != nil {
		tod := *m.TimeOfDay
		m.TimeOfDay = &tod
	}
	return m
}
