package medication

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is how often a medication is taken
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Medication is a user's medication schedule entry. It is never deleted;
// IsActive=false retires it.
type Medication struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency Frequency `json:"frequency"`
	TimeOfDay *string   `json:"timeOfDay"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateInput is the payload for adding a medication
type CreateInput struct {
	Name      string    `json:"name" validate:"required,notblank,max=200"`
	Dosage    string    `json:"dosage" validate:"required,notblank,max=100"`
	Frequency Frequency `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	TimeOfDay *string   `json:"timeOfDay,omitempty" validate:"omitempty,datetime=15:04"`
	IsActive  *bool     `json:"isActive,omitempty"`
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,notblank,max=200"`
	Dosage    *string    `json:"dosage,omitempty" validate:"omitempty,notblank,max=100"`
	Frequency *Frequency `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly monthly"`
	TimeOfDay *string    `json:"timeOfDay,omitempty" validate:"omitempty,datetime=15:04"`
	IsActive  *bool      `json:"isActive,omitempty"`
}

// Apply copies the set fields of p onto m
func (p Patch) Apply(m *Medication) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Dosage != nil {
		m.Dosage = *p.Dosage
	}
	if p.Frequency != nil {
		m.Frequency = *p.Frequency
	}
	if p.TimeOfDay != nil {
		// An empty string clears the reminder time
		if *p.TimeOfDay == "" {
			m.TimeOfDay = nil
		} else {
			tod := *p.TimeOfDay
			m.TimeOfDay = &tod
		}
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
}

// NextDose returns when the next dose is due relative to now, in now's
// location. Daily doses fall today at TimeOfDay, or tomorrow once that
// moment has passed. Weekly doses fall seven days from today at TimeOfDay.
// Monthly schedules and entries without a TimeOfDay have no computed dose.
func (m *Medication) NextDose(now time.Time) *time.Time {
	if m.TimeOfDay == nil {
		return nil
	}
	clock, err := time.Parse("15:04", *m.TimeOfDay)
	if err != nil {
		return nil
	}

	at := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())

	switch m.Frequency {
	case Daily:
		if !at.After(now) {
			at = at.AddDate(0, 0, 1)
		}
	case Weekly:
		at = at.AddDate(0, 0, 7)
	default:
		return nil
	}
	return &at
}

// View is the API representation, including the computed next dose
type View struct {
	Medication
	NextDose *time.Time `json:"nextDose"`
}

func NewView(m Medication, now time.Time) View {
	return View{Medication: m, NextDose: m.NextDose(now)}
}
