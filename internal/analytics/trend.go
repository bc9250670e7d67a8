// Package analytics derives dashboard metrics from a user's symptom history.
// The functions in this file and stats.go are pure; Service feeds them from
// the stores.
package analytics

import (
	"math"
	"slices"

	"github.com/redmonkez12/glp1-companion/internal/symptom"
)

type Trend string

const (
	Improving Trend = "improving"
	Stable    Trend = "stable"
	Worsening Trend = "worsening"
)

// trendDeadband is the severity change the recent half must exceed before
// the trend leaves Stable
const trendDeadband = 0.5

// TrackedSymptoms are the categories shown on the progress card
var TrackedSymptoms = []symptom.Symptom{symptom.Nausea, symptom.Fatigue, symptom.Digestive}

type SymptomProgress struct {
	Progress    float64 `json:"progress"`
	Trend       Trend   `json:"trend"`
	AvgSeverity float64 `json:"avgSeverity"`
}

// ClassifySymptomTrend scores entries of a single symptom category. Progress
// falls from 100 to 0 as average severity rises; the trend compares the
// newer half of the entries with the older half.
func ClassifySymptomTrend(entries []symptom.Entry) SymptomProgress {
	if len(entries) == 0 {
		return SymptomProgress{Progress: 0, Trend: Stable, AvgSeverity: 0}
	}

	avg := meanSeverity(entries)

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b symptom.Entry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	split := (len(sorted) + 1) / 2
	recentAvg := meanSeverity(sorted[:split])
	olderAvg := recentAvg
	if older := sorted[split:]; len(older) > 0 {
		olderAvg = meanSeverity(older)
	}

	trend := Stable
	switch {
	case recentAvg < olderAvg-trendDeadband:
		trend = Improving
	case recentAvg > olderAvg+trendDeadband:
		trend = Worsening
	}

	return SymptomProgress{
		Progress:    progressFor(avg),
		Trend:       trend,
		AvgSeverity: avg,
	}
}

// SymptomProgressByCategory classifies each tracked category independently.
// Entries for other categories are ignored.
func SymptomProgressByCategory(entries []symptom.Entry) map[symptom.Symptom]SymptomProgress {
	byCategory := make(map[symptom.Symptom][]symptom.Entry, len(TrackedSymptoms))
	for _, e := range entries {
		byCategory[e.Symptom] = append(byCategory[e.Symptom], e)
	}

	out := make(map[symptom.Symptom]SymptomProgress, len(TrackedSymptoms))
	for _, s := range TrackedSymptoms {
		out[s] = ClassifySymptomTrend(byCategory[s])
	}
	return out
}

func progressFor(avgSeverity float64) float64 {
	return math.Max(0, 100-avgSeverity*10)
}

func meanSeverity(entries []symptom.Entry) float64 {
	sum := 0
	for _, e := range entries {
		sum += e.Severity
	}
	return float64(sum) / float64(len(entries))
}
