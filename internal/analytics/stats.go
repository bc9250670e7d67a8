package analytics

import (
	"fmt"
	"time"

	"github.com/redmonkez12/glp1-companion/internal/symptom"
)

const (
	adherencePenalty = 5
	maxContentViewed = 7
	statsWindow      = 7 * 24 * time.Hour
)

// Stats is the dashboard summary card
type Stats struct {
	SymptomsToday int    `json:"symptomsToday"`
	AdherenceRate string `json:"adherenceRate"`
	ContentViewed int    `json:"contentViewed"`
}

// DashboardStats summarizes entries as of now. Adherence is estimated from
// the number of side effects logged in the last seven days, and content
// viewed is the catalog size capped at seven; neither is tracked per user.
func DashboardStats(entries []symptom.Entry, catalogSize int, now time.Time) Stats {
	dayStart := startOfDay(now)
	weekStart := now.Add(-statsWindow)

	today, week := 0, 0
	for _, e := range entries {
		if !e.Timestamp.Before(dayStart) && !e.Timestamp.After(now) {
			today++
		}
		if !e.Timestamp.Before(weekStart) {
			week++
		}
	}

	return Stats{
		SymptomsToday: today,
		AdherenceRate: fmt.Sprintf("%d%%", max(0, 100-week*adherencePenalty)),
		ContentViewed: min(catalogSize, maxContentViewed),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
