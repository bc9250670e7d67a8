package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Preferences holds free-form lifestyle settings shown on the dashboard.
type Preferences struct {
	FoodAllergies []string `json:"foodAllergies,omitempty" validate:"omitempty,dive,notblank"`
	ExerciseLevel string   `json:"exerciseLevel,omitempty" validate:"max=64"`
	EnergyLevels  string   `json:"energyLevels,omitempty" validate:"max=64"`
}

type User struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Never expose password hash in JSON
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Condition    *string      `json:"condition"`
	Preferences  *Preferences `json:"preferences,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// NormalizeEmail is applied to every email before it is stored or looked up
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
