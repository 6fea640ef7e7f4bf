package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an admin user account. Sessions and login live in
// the frontend gateway; the backend only stores credentials.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
