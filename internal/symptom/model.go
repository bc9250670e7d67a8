package symptom

import (
	"time"

	"github.com/google/uuid"
)

// Symptom is one of the side effects a user can log
type Symptom string

const (
	Nausea        Symptom = "nausea"
	Fatigue       Symptom = "fatigue"
	MuscleLoss    Symptom = "muscle-loss"
	Digestive     Symptom = "digestive"
	Headache      Symptom = "headache"
	Dizziness     Symptom = "dizziness"
	InjectionSite Symptom = "injection-site"
)

// All lists every known symptom in display order
var All = []Symptom{Nausea, Fatigue, MuscleLoss, Digestive, Headache, Dizziness, InjectionSite}

// Entry is a single logged side effect. Entries are append-only.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Symptom   Symptom   `json:"symptom"`
	Severity  int       `json:"severity"`
	Notes     *string   `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// LogInput is the payload for recording a new entry
type LogInput struct {
	Symptom  Symptom `json:"symptom" validate:"required,oneof=nausea fatigue muscle-loss digestive headache dizziness injection-site"`
	Severity int     `json:"severity" validate:"required,min=1,max=10"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}
