package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/redmonkez12/glp1-companion/internal/symptom"
)

func at(ts time.Time) symptom.Entry {
	return symptom.Entry{Symptom: symptom.Nausea, Severity: 4, Timestamp: ts}
}

func TestDashboardStats(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	midnight := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	var entries []symptom.Entry
	// three today, including one exactly at midnight
	entries = append(entries, at(midnight), at(now.Add(-time.Hour)), at(now))
	// seven more earlier in the week
	for i := 1; i <= 7; i++ {
		entries = append(entries, at(midnight.Add(-time.Duration(i)*12*time.Hour)))
	}
	// outside the window
	entries = append(entries, at(now.Add(-8*24*time.Hour)))

	stats := DashboardStats(entries, 4, now)
	assert.Equal(t, Stats{SymptomsToday: 3, AdherenceRate: "50%", ContentViewed: 4}, stats)
}

func TestDashboardStats_Clamps(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	entries := make([]symptom.Entry, 0, 25)
	for i := 0; i < 25; i++ {
		entries = append(entries, at(now.Add(-time.Duration(i)*time.Minute)))
	}

	stats := DashboardStats(entries, 20, now)
	assert.Equal(t, "0%", stats.AdherenceRate)
	assert.Equal(t, 7, stats.ContentViewed)
}

func TestDashboardStats_Empty(t *testing.T) {
	stats := DashboardStats(nil, 0, time.Now())
	assert.Equal(t, Stats{SymptomsToday: 0, AdherenceRate: "100%", ContentViewed: 0}, stats)
}

func TestDashboardStats_DayFollowsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 6, 10, 1, 0, 0, 0, loc)

	entries := []symptom.Entry{
		at(time.Date(2025, 6, 10, 0, 30, 0, 0, loc)),
		// 23:30 the previous local day, though already June 10 in UTC
		at(time.Date(2025, 6, 9, 23, 30, 0, 0, loc)),
	}

	stats := DashboardStats(entries, 0, now)
	assert.Equal(t, 1, stats.SymptomsToday)
	assert.Equal(t, "90%", stats.AdherenceRate)
}

func TestDashboardStats_FutureEntriesNotToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	stats := DashboardStats([]symptom.Entry{at(now.Add(time.Minute))}, 0, now)
	assert.Equal(t, 0, stats.SymptomsToday)
}
