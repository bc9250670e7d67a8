package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("medication not found")

// Store persists medications. Get and Update are scoped to the owning user
// and return ErrNotFound for ids that belong to someone else.
type Store interface {
	Create(ctx context.Context, m *Medication) (*Medication, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]Medication, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Medication, error)
	Update(ctx context.Context, m *Medication) (*Medication, error)
}
