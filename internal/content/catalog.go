package content

import (
	"context"

	"github.com/google/uuid"
)

// Catalog is the read-mostly store of educational content. Create is used
// only by seeding and the admin CLI.
type Catalog interface {
	// List returns every item, or only items sharing at least one of tags
	List(ctx context.Context, tags []string) ([]Item, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, item *Item) (*Item, error)
}

func newItem(in NewItem) *Item {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return &Item{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Tags:        append([]string(nil), tags...),
		URL:         in.URL,
		Duration:    in.Duration,
	}
}
