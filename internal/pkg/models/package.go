package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionPackage represents a sellable subscription tier.
// Price and duration edits never retroactively affect transactions or
// memberships that referenced the package earlier; transactions snapshot
// the price at initiation time.
type SubscriptionPackage struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Description    string          `json:"description" db:"description"`
	DurationMonths int             `json:"duration_months" db:"duration_months"`
	Price          decimal.Decimal `json:"price" db:"price"`
	IsActive       bool            `json:"is_active" db:"is_active"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// CreatePackageRequest is the payload for creating a subscription package.
type CreatePackageRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Description    string          `json:"description" validate:"required"`
	DurationMonths int             `json:"duration_months" validate:"required,min=1,max=120"`
	Price          decimal.Decimal `json:"price"`
	IsActive       *bool           `json:"is_active"`
}

// UpdatePackageRequest is the payload for updating a subscription package.
type UpdatePackageRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Description    string          `json:"description" validate:"required"`
	DurationMonths int             `json:"duration_months" validate:"required,min=1,max=120"`
	Price          decimal.Decimal `json:"price"`
	IsActive       *bool           `json:"is_active"`
}
