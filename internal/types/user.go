package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type UserProfile struct {
	ID           uuid.UUID       `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	FirstName    *string         `json:"firstName,omitempty"`
	LastName     *string         `json:"lastName,omitempty"`
	Preferences  json.RawMessage `json:"preferences,omitempty" swaggertype:"object"`
	PasswordHash string          `json:"-"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// UpdateProfileParams defines the fields allowed for profile updates.
// Nil fields are left untouched.
type UpdateProfileParams struct {
	FirstName   *string         `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName    *string         `json:"lastName,omitempty" validate:"omitempty,max=50"`
	Preferences json.RawMessage `json:"preferences,omitempty" swaggertype:"object"`
}
