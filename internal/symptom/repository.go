package symptom

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/glp1-companion/internal/database"
)

// Repository stores symptom entries in Postgres
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e *Entry) (*Entry, error) {
	row := &database.SymptomEntry{
		ID:        e.ID,
		UserID:    e.UserID,
		Symptom:   string(e.Symptom),
		Severity:  e.Severity,
		Notes:     e.Notes,
		Timestamp: e.Timestamp,
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Timestamp.IsZero() {
		row.Timestamp = time.Now()
	}

	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create symptom entry: %w", err)
	}

	out := mapRow(row)
	return &out, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error) {
	var rows []database.SymptomEntry
	q := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list symptom entries: %w", err)
	}

	return mapRows(rows), nil
}

func (r *Repository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]Entry, error) {
	var rows []database.SymptomEntry
	err := r.db.NewSelect().
		Model(&rows).
		Where("user_id = ?", userID).
		Where(`"timestamp" >= ?`, since).
		Order("timestamp DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent symptom entries: %w", err)
	}

	return mapRows(rows), nil
}

func mapRows(rows []database.SymptomEntry) []Entry {
	out := make([]Entry, 0, len(rows))
	for i := range rows {
		out = append(out, mapRow(&rows[i]))
	}
	return out
}

func mapRow(row *database.SymptomEntry) Entry {
	return Entry{
		ID:        row.ID,
		UserID:    row.UserID,
		Symptom:   Symptom(row.Symptom),
		Severity:  row.Severity,
		Notes:     row.Notes,
		Timestamp: row.Timestamp,
	}
}
