package content

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/redmonkez12/glp1-companion/internal/validation"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// LoadItems decodes and validates a YAML list of catalog entries
func LoadItems(r io.Reader) ([]NewItem, error) {
	var items []NewItem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&items); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i, item := range items {
		if err := validation.Struct(item); err != nil {
			return nil, fmt.Errorf("catalog item %d (%q): %w", i, item.Title, err)
		}
	}
	return items, nil
}

// DefaultItems returns the built-in catalog
func DefaultItems() ([]NewItem, error) {
	return LoadItems(bytes.NewReader(defaultCatalog))
}

// Seed inserts items when the catalog is empty. It reports how many items
// were written; a non-empty catalog is left untouched.
func Seed(ctx context.Context, catalog Catalog, items []NewItem) (int, error) {
	n, err := catalog.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for i, in := range items {
		if _, err := catalog.Create(ctx, newItem(in)); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", in.Title, err)
		}
	}
	return len(items), nil
}

// Add validates and stores a single item regardless of catalog size
func Add(ctx context.Context, catalog Catalog, in NewItem) (*Item, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return catalog.Create(ctx, newItem(in))
}
