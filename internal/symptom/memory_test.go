package symptom

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	for i, sev := range []int{3, 7, 5} {
		_, err := store.Create(ctx, &Entry{UserID: userID, Symptom: Nausea, Severity: sev, Timestamp: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}
	_, err := store.Create(ctx, &Entry{UserID: uuid.New(), Symptom: Fatigue, Severity: 9, Timestamp: base})
	require.NoError(t, err)

	entries, err := store.ListByUser(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{5, 7, 3}, severities(entries))

	limited, err := store.ListByUser(ctx, userID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7}, severities(limited))
}

func TestMemoryStore_ListSince(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()
	now := time.Date(2025, 5, 8, 12, 0, 0, 0, time.UTC)

	_, err := store.Create(ctx, &Entry{UserID: userID, Symptom: Nausea, Severity: 1, Timestamp: now.AddDate(0, 0, -8)})
	require.NoError(t, err)
	_, err = store.Create(ctx, &Entry{UserID: userID, Symptom: Nausea, Severity: 2, Timestamp: now.AddDate(0, 0, -7)})
	require.NoError(t, err)
	_, err = store.Create(ctx, &Entry{UserID: userID, Symptom: Nausea, Severity: 3, Timestamp: now})
	require.NoError(t, err)

	entries, err := store.ListSince(ctx, userID, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, severities(entries))
}

func TestMemoryStore_AssignsDefaultsAndCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()
	notes := "after lunch"

	created, err := store.Create(ctx, &Entry{UserID: userID, Symptom: Headache, Severity: 4, Notes: &notes})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.Timestamp.IsZero())

	*created.Notes = "changed"
	entries, err := store.ListByUser(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "after lunch", *entries[0].Notes)
}

func TestMemoryStore_EmptyListIsNotNil(t *testing.T) {
	entries, err := NewMemoryStore().ListByUser(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func severities(entries []Entry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Severity)
	}
	return out
}
