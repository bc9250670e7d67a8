package content

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryCatalog struct {
	mu    sync.RWMutex
	items []Item
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

func (c *MemoryCatalog) List(ctx context.Context, tags []string) ([]Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if len(tags) == 0 || hasAnyTag(item, tags) {
			out = append(out, cloneItem(item))
		}
	}
	return out, nil
}

func (c *MemoryCatalog) Count(ctx context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items), nil
}

func (c *MemoryCatalog) Create(ctx context.Context, item *Item) (*Item, error) {
	stored := cloneItem(*item)
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	c.mu.Lock()
	c.items = append(c.items, stored)
	c.mu.Unlock()

	out := cloneItem(stored)
	return &out, nil
}

func cloneItem(item Item) Item {
	item.Tags = append([]string{}, item.Tags...)
	if item.URL != nil {
		u := *item.URL
		item.URL = &u
	}
	if item.Duration != nil {
		d := *item.Duration
		item.Duration = &d
	}
	return item
}
