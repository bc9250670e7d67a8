package symptom

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(ctx context.Context, e *Entry) (*Entry, error) {
	stored := cloneEntry(*e)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now()
	}

	s.mu.Lock()
	s.entries = append(s.entries, stored)
	s.mu.Unlock()

	out := cloneEntry(stored)
	return &out, nil
}

func (s *MemoryStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error) {
	entries := s.collect(userID, func(Entry) bool { return true })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *MemoryStore) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Entry, error) {
	return s.collect(userID, func(e Entry) bool { return !e.Timestamp.Before(since) }), nil
}

// collect returns the user's matching entries newest first; ties keep the
// most recently written entry first.
func (s *MemoryStore) collect(userID uuid.UUID, keep func(Entry) bool) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0)
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.UserID == userID && keep(e) {
			out = append(out, cloneEntry(e))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func cloneEntry(e Entry) Entry {
	if e.Notes != nil {
		notes := *e.Notes
		e.Notes = &notes
	}
	return e
}
