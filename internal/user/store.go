package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Store persists user records. Implementations must enforce email
// uniqueness and return ErrDuplicateEmail on conflict.
type Store interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, prefs *Preferences) (*User, error)
}
