package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/glp1-companion/internal/database"
)

const uniqueViolation = "23505"

// Repository handles user data persistence in Postgres
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user into the database
func (r *Repository) Create(ctx context.Context, u *User) (*User, error) {
	dbUser := mapModelToDBUser(u)
	dbUser.Email = NormalizeEmail(u.Email)
	if dbUser.ID == uuid.Nil {
		dbUser.ID = uuid.New()
	}
	if dbUser.CreatedAt.IsZero() {
		dbUser.CreatedAt = time.Now()
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Exec(ctx)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByEmail retrieves a user by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("email = ?", NormalizeEmail(email)).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// UpdatePreferences replaces the stored preferences and returns the updated user
func (r *Repository) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs *Preferences) (*User, error) {
	var value any
	if prefs != nil {
		raw, err := json.Marshal(mapPreferencesToDB(prefs))
		if err != nil {
			return nil, fmt.Errorf("failed to encode preferences: %w", err)
		}
		value = string(raw)
	}

	result, err := r.db.NewUpdate().
		Model((*database.User)(nil)).
		Set("preferences = ?::jsonb", value).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func mapModelToDBUser(u *User) *database.User {
	return &database.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Condition:    u.Condition,
		Preferences:  mapPreferencesToDB(u.Preferences),
		CreatedAt:    u.CreatedAt,
	}
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	u := &User{
		ID:           dbu.ID,
		Email:        dbu.Email,
		PasswordHash: dbu.PasswordHash,
		FirstName:    dbu.FirstName,
		LastName:     dbu.LastName,
		Condition:    dbu.Condition,
		CreatedAt:    dbu.CreatedAt,
	}
	if dbu.Preferences != nil {
		u.Preferences = &Preferences{
			FoodAllergies: dbu.Preferences.FoodAllergies,
			ExerciseLevel: dbu.Preferences.ExerciseLevel,
			EnergyLevels:  dbu.Preferences.EnergyLevels,
		}
	}
	return u
}

func mapPreferencesToDB(p *Preferences) *database.UserPreferences {
	if p == nil {
		return nil
	}
	return &database.UserPreferences{
		FoodAllergies: p.FoodAllergies,
		ExerciseLevel: p.ExerciseLevel,
		EnergyLevels:  p.EnergyLevels,
	}
}
