package symptom

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/glp1-companion/internal/logging"
	"github.com/redmonkez12/glp1-companion/internal/validation"
)

func newTestService(now time.Time) *Service {
	svc := NewService(NewMemoryStore(), logging.Discard())
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_LogStampsServerTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	svc := newTestService(now)
	userID := uuid.New()

	entry, err := svc.Log(context.Background(), userID, LogInput{Symptom: Dizziness, Severity: 3})
	require.NoError(t, err)
	assert.Equal(t, now, entry.Timestamp)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, Dizziness, entry.Symptom)
}

func TestService_LogValidation(t *testing.T) {
	svc := newTestService(time.Now())

	tests := []struct {
		name  string
		in    LogInput
		field string
	}{
		{"unknown symptom", LogInput{Symptom: "sneezing", Severity: 3}, "symptom"},
		{"missing symptom", LogInput{Severity: 3}, "symptom"},
		{"severity too low", LogInput{Symptom: Nausea, Severity: 0}, "severity"},
		{"severity too high", LogInput{Symptom: Nausea, Severity: 11}, "severity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Log(context.Background(), uuid.New(), tt.in)
			var ve *validation.Error
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestService_ListLimit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now)
	userID := uuid.New()

	for i := 1; i <= 4; i++ {
		svc.now = func() time.Time { return now.Add(time.Duration(i) * time.Minute) }
		_, err := svc.Log(ctx, userID, LogInput{Symptom: Fatigue, Severity: i})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, userID, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, severities(all))

	two, err := svc.List(ctx, userID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, severities(two))
}
