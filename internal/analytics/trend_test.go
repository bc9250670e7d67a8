package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/glp1-companion/internal/symptom"
)

var base = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// newestFirst builds entries of one category, the first severity being the
// most recent, each an hour older than the previous
func newestFirst(s symptom.Symptom, severities ...int) []symptom.Entry {
	out := make([]symptom.Entry, 0, len(severities))
	for i, sev := range severities {
		out = append(out, symptom.Entry{
			ID:        uuid.New(),
			Symptom:   s,
			Severity:  sev,
			Timestamp: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestClassifySymptomTrend(t *testing.T) {
	tests := []struct {
		name     string
		entries  []symptom.Entry
		expected SymptomProgress
	}{
		{
			name:     "empty",
			entries:  nil,
			expected: SymptomProgress{Progress: 0, Trend: Stable, AvgSeverity: 0},
		},
		{
			name:     "single entry",
			entries:  newestFirst(symptom.Nausea, 5),
			expected: SymptomProgress{Progress: 50, Trend: Stable, AvgSeverity: 5},
		},
		{
			name:     "recent worse than older",
			entries:  newestFirst(symptom.Nausea, 8, 8, 2, 2),
			expected: SymptomProgress{Progress: 50, Trend: Worsening, AvgSeverity: 5},
		},
		{
			name:     "recent better than older",
			entries:  newestFirst(symptom.Nausea, 2, 2, 8, 8),
			expected: SymptomProgress{Progress: 50, Trend: Improving, AvgSeverity: 5},
		},
		{
			name:     "change within deadband",
			entries:  newestFirst(symptom.Fatigue, 5, 5, 4, 5),
			expected: SymptomProgress{Progress: 52.5, Trend: Stable, AvgSeverity: 4.75},
		},
		{
			name:     "odd count puts middle entry in recent half",
			entries:  newestFirst(symptom.Fatigue, 6, 6, 3),
			expected: SymptomProgress{Progress: 50, Trend: Worsening, AvgSeverity: 5},
		},
		{
			name:     "maximum severity clamps at zero",
			entries:  newestFirst(symptom.Digestive, 10, 10),
			expected: SymptomProgress{Progress: 0, Trend: Stable, AvgSeverity: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySymptomTrend(tt.entries)
			assert.Equal(t, tt.expected.Trend, got.Trend)
			assert.InDelta(t, tt.expected.Progress, got.Progress, 1e-9)
			assert.InDelta(t, tt.expected.AvgSeverity, got.AvgSeverity, 1e-9)
		})
	}
}

func TestClassifySymptomTrend_OrderIndependent(t *testing.T) {
	entries := newestFirst(symptom.Nausea, 8, 8, 2, 2)
	shuffled := []symptom.Entry{entries[2], entries[0], entries[3], entries[1]}

	got := ClassifySymptomTrend(shuffled)
	assert.Equal(t, Worsening, got.Trend)

	// input order is preserved
	assert.Equal(t, entries[2].ID, shuffled[0].ID)
	assert.Equal(t, entries[0].ID, shuffled[1].ID)
}

func TestClassifySymptomTrend_ProgressMonotonic(t *testing.T) {
	prev := 101.0
	for sev := 1; sev <= 10; sev++ {
		got := ClassifySymptomTrend(newestFirst(symptom.Nausea, sev, sev, sev))
		assert.GreaterOrEqual(t, got.Progress, 0.0)
		assert.LessOrEqual(t, got.Progress, 100.0)
		assert.LessOrEqual(t, got.Progress, prev, "severity %d", sev)
		prev = got.Progress
	}
}

func TestSymptomProgressByCategory(t *testing.T) {
	var entries []symptom.Entry
	entries = append(entries, newestFirst(symptom.Nausea, 8, 8, 2, 2)...)
	entries = append(entries, newestFirst(symptom.Fatigue, 3)...)
	entries = append(entries, newestFirst(symptom.Headache, 9, 9)...)

	got := SymptomProgressByCategory(entries)
	require.Len(t, got, 3)

	assert.Equal(t, Worsening, got[symptom.Nausea].Trend)
	assert.InDelta(t, 70, got[symptom.Fatigue].Progress, 1e-9)
	assert.Equal(t, SymptomProgress{Progress: 0, Trend: Stable, AvgSeverity: 0}, got[symptom.Digestive])
	assert.NotContains(t, got, symptom.Headache)
}
