package medication

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/glp1-companion/internal/database"
)

// Repository stores medications in Postgres
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, m *Medication) (*Medication, error) {
	row := mapToRow(m)
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create medication: %w", err)
	}

	out := mapRow(row)
	return &out, nil
}

func (r *Repository) ListActive(ctx context.Context, userID uuid.UUID) ([]Medication, error) {
	var rows []database.Medication
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}

	out := make([]Medication, 0, len(rows))
	for i := range rows {
		out = append(out, mapRow(&rows[i]))
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, userID, id uuid.UUID) (*Medication, error) {
	row := new(database.Medication)
	err := r.db.NewSelect().
		Model(row).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}

	out := mapRow(row)
	return &out, nil
}

// Update writes the mutable fields of m. created_at is never changed.
func (r *Repository) Update(ctx context.Context, m *Medication) (*Medication, error) {
	row := mapToRow(m)
	result, err := r.db.NewUpdate().
		Model(row).
		Column("name", "dosage", "frequency", "time_of_day", "is_active").
		Where("id = ?", m.ID).
		Where("user_id = ?", m.UserID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update medication: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.Get(ctx, m.UserID, m.ID)
}

func mapToRow(m *Medication) *database.Medication {
	return &database.Medication{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: string(m.Frequency),
		TimeOfDay: m.TimeOfDay,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func mapRow(row *database.Medication) Medication {
	return Medication{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Dosage:    row.Dosage,
		Frequency: Frequency(row.Frequency),
		TimeOfDay: row.TimeOfDay,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}
