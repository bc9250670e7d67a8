package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Table models. Domain packages map these to their own types.

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID        `bun:"id,pk,type:uuid"`
	Email        string           `bun:"email,notnull"`
	PasswordHash string           `bun:"password_hash,notnull"`
	FirstName    string           `bun:"first_name,notnull"`
	LastName     string           `bun:"last_name,notnull"`
	Condition    *string          `bun:"condition"`
	Preferences  *UserPreferences `bun:"preferences,type:jsonb"`
	CreatedAt    time.Time        `bun:"created_at,notnull"`
}

type UserPreferences struct {
	FoodAllergies []string `json:"foodAllergies,omitempty"`
	ExerciseLevel string   `json:"exerciseLevel,omitempty"`
	EnergyLevels  string   `json:"energyLevels,omitempty"`
}

type SymptomEntry struct {
	bun.BaseModel `bun:"table:symptom_entries,alias:se"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	UserID    uuid.UUID `bun:"user_id,type:uuid,notnull"`
	Symptom   string    `bun:"symptom,notnull"`
	Severity  int       `bun:"severity,notnull"`
	Notes     *string   `bun:"notes"`
	Timestamp time.Time `bun:"timestamp,notnull"`
}

type Medication struct {
	bun.BaseModel `bun:"table:medications,alias:m"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	UserID    uuid.UUID `bun:"user_id,type:uuid,notnull"`
	Name      string    `bun:"name,notnull"`
	Dosage    string    `bun:"dosage,notnull"`
	Frequency string    `bun:"frequency,notnull"`
	TimeOfDay *string   `bun:"time_of_day"`
	IsActive  bool      `bun:"is_active,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

type ContentItem struct {
	bun.BaseModel `bun:"table:content_items,alias:ci"`

	ID          uuid.UUID `bun:"id,pk,type:uuid"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description,notnull"`
	Type        string    `bun:"type,notnull"`
	Tags        []string  `bun:"tags,array"`
	URL         *string   `bun:"url"`
	Duration    *string   `bun:"duration"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
}
