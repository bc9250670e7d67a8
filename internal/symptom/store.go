package symptom

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists symptom entries. Lists are ordered newest first.
type Store interface {
	Create(ctx context.Context, e *Entry) (*Entry, error)
	// ListByUser returns at most limit entries; limit <= 0 returns all.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Entry, error)
}
