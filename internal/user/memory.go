package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps users in process memory. Used for local development
// and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStore) Create(ctx context.Context, u *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := NormalizeEmail(u.Email)
	if _, exists := s.byEmail[email]; exists {
		return nil, ErrDuplicateEmail
	}

	stored := cloneUser(u)
	stored.Email = email
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	s.byID[stored.ID] = stored
	s.byEmail[email] = stored.ID

	return cloneUser(stored), nil
}

func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(s.byID[id]), nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *MemoryStore) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs *Preferences) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Preferences = clonePreferences(prefs)
	return cloneUser(u), nil
}

// Delete removes a user. Not reachable from the API; used to exercise
// the "subject gone" path of token verification.
func (s *MemoryStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.byID[id]; ok {
		delete(s.byEmail, u.Email)
		delete(s.byID, id)
	}
}

func cloneUser(u *User) *User {
	c := *u
	if u.Condition != nil {
		cond := *u.Condition
		c.Condition = &cond
	}
	c.Preferences = clonePreferences(u.Preferences)
	return &c
}

func clonePreferences(p *Preferences) *Preferences {
	if p == nil {
		return nil
	}
	c := *p
	if p.FoodAllergies != nil {
		c.FoodAllergies = append([]string(nil), p.FoodAllergies...)
	}
	return &c
}
