package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/glp1-companion/internal/validation"
)

func TestDefaultItems(t *testing.T) {
	items, err := DefaultItems()
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "Low-Fat Smoothie Recipe", items[0].Title)
	assert.Equal(t, Nutrition, items[0].Type)
	assert.Equal(t, []string{"nausea", "high-fiber"}, items[0].Tags)
	require.NotNil(t, items[0].Duration)
	assert.Equal(t, "5 min read", *items[0].Duration)

	for _, item := range items {
		require.NotNil(t, item.URL, item.Title)
		assert.True(t, strings.HasPrefix(*item.URL, "https://"), item.Title)
	}
}

func TestLoadItems_RejectsInvalidType(t *testing.T) {
	src := `
- title: Stretching
  description: Ten minutes of light stretching.
  type: meditation
  tags: [fatigue]
`
	_, err := LoadItems(strings.NewReader(src))
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
}

func TestLoadItems_RejectsUnknownField(t *testing.T) {
	src := `
- title: Stretching
  description: Ten minutes of light stretching.
  type: exercise
  author: someone
`
	_, err := LoadItems(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadItems_Empty(t *testing.T) {
	items, err := LoadItems(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	catalog := NewMemoryCatalog()

	items, err := DefaultItems()
	require.NoError(t, err)

	n, err := Seed(ctx, catalog, items)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = Seed(ctx, catalog, items)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	count, err := catalog.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

type failingCatalog struct {
	MemoryCatalog
	countErr error
}

func (c *failingCatalog) Count(ctx context.Context) (int, error) {
	return 0, c.countErr
}

func TestSeed_CountError(t *testing.T) {
	catalog := &failingCatalog{countErr: errors.New("db down")}

	_, err := Seed(context.Background(), catalog, []NewItem{{Title: "x", Description: "y", Type: Exercise}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	catalog := NewMemoryCatalog()

	item, err := Add(ctx, catalog, NewItem{
		Title:       "Protein First",
		Description: "Eat protein first to preserve muscle.",
		Type:        Nutrition,
		Tags:        []string{"muscle_loss"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"muscle_loss"}, item.Tags)
	assert.False(t, item.CreatedAt.IsZero())

	_, err = Add(ctx, catalog, NewItem{Title: " ", Description: "d", Type: Nutrition})
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
}
