package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a read-only view of an account managed by the external auth
// provider. The service never creates or mutates users; it only joins
// them into reporting reads and counts members for the admin dashboard.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
