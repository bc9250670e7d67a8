package medication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNextDose(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2025, 7, 10, 9, 30, 0, 0, loc)

	tests := []struct {
		name      string
		frequency Frequency
		timeOfDay *string
		want      *time.Time
	}{
		{"daily later today", Daily, strPtr("18:00"), ptrTime(time.Date(2025, 7, 10, 18, 0, 0, 0, loc))},
		{"daily already passed", Daily, strPtr("08:00"), ptrTime(time.Date(2025, 7, 11, 8, 0, 0, 0, loc))},
		{"daily exactly now", Daily, strPtr("09:30"), ptrTime(time.Date(2025, 7, 11, 9, 30, 0, 0, loc))},
		{"weekly", Weekly, strPtr("07:15"), ptrTime(time.Date(2025, 7, 17, 7, 15, 0, 0, loc))},
		{"monthly", Monthly, strPtr("07:15"), nil},
		{"no time", Daily, nil, nil},
		{"bad time", Daily, strPtr("25:99"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Medication{Frequency: tt.frequency, TimeOfDay: tt.timeOfDay}
			got := m.NextDose(now)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, got)
			assert.Equal(t, loc, got.Location())
		})
	}
}

func TestPatchApply(t *testing.T) {
	m := &Medication{Name: "Ozempic", Dosage: "0.25mg", Frequency: Weekly, TimeOfDay: strPtr("08:00"), IsActive: true}

	inactive := false
	daily := Daily
	Patch{Dosage: strPtr("0.5mg"), Frequency: &daily, IsActive: &inactive}.Apply(m)

	assert.Equal(t, "Ozempic", m.Name)
	assert.Equal(t, "0.5mg", m.Dosage)
	assert.Equal(t, Daily, m.Frequency)
	assert.False(t, m.IsActive)
	require.NotNil(t, m.TimeOfDay)

	Patch{TimeOfDay: strPtr("")}.Apply(m)
	assert.Nil(t, m.TimeOfDay)
}

func ptrTime(t time.Time) *time.Time { return &t }
