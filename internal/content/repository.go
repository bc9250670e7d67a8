package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/redmonkez12/glp1-companion/internal/database"
)

// Repository is the Postgres-backed Catalog
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, tags []string) ([]Item, error) {
	var rows []database.ContentItem
	q := r.db.NewSelect().
		Model(&rows).
		Order("created_at ASC")
	if len(tags) > 0 {
		q = q.Where("tags && ?", pgdialect.Array(tags))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	out := make([]Item, 0, len(rows))
	for i := range rows {
		out = append(out, mapRow(&rows[i]))
	}
	return out, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().
		Model((*database.ContentItem)(nil)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count content: %w", err)
	}
	return n, nil
}

func (r *Repository) Create(ctx context.Context, item *Item) (*Item, error) {
	row := &database.ContentItem{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Type:        string(item.Type),
		Tags:        item.Tags,
		URL:         item.URL,
		Duration:    item.Duration,
		CreatedAt:   item.CreatedAt,
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	if row.Tags == nil {
		row.Tags = []string{}
	}

	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	out := mapRow(row)
	return &out, nil
}

func mapRow(row *database.ContentItem) Item {
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}
	return Item{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Type:        Type(row.Type),
		Tags:        tags,
		URL:         row.URL,
		Duration:    row.Duration,
		CreatedAt:   row.CreatedAt,
	}
}
