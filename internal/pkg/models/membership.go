package models

import (
	"time"

	"github.com/google/uuid"
)

// MembershipStatus is the stored state of a membership.
type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusExpired   MembershipStatus = "expired"
	MembershipStatusCancelled MembershipStatus = "cancelled"
)

// ValidMembershipStatus reports whether s is part of the closed status set.
func ValidMembershipStatus(s MembershipStatus) bool {
	switch s {
	case MembershipStatusActive, MembershipStatusExpired, MembershipStatusCancelled:
		return true
	}
	return false
}

// Membership is the time-bounded entitlement granted by a paid
// transaction. Nothing flips active rows to expired in the background;
// readers must go through EffectiveStatus.
type Membership struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	PackageID uuid.UUID        `json:"subscription_package_id" db:"subscription_package_id"`
	StartedAt time.Time        `json:"started_at" db:"started_at"`
	ExpiresAt time.Time        `json:"expires_at" db:"expires_at"`
	Status    MembershipStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`

	// Joined views for reporting reads, not persisted on this row.
	User    *User                `json:"user,omitempty" db:"-"`
	Package *SubscriptionPackage `json:"package,omitempty" db:"-"`
}

// EffectiveStatus computes the status as of now. A stored active
// membership past its expiry window reads as expired; admin overrides
// (cancelled, expired) are reported as stored.
func (m *Membership) EffectiveStatus(now time.Time) MembershipStatus {
	if m.Status == MembershipStatusActive && now.After(m.ExpiresAt) {
		return MembershipStatusExpired
	}
	return m.Status
}

// UpdateMembershipRequest is the admin payload for a status override.
type UpdateMembershipRequest struct {
	Status MembershipStatus `json:"status" validate:"required"`
}
