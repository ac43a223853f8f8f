package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMembershipEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		status   MembershipStatus
		expires  time.Time
		expected MembershipStatus
	}{
		{
			name:     "active within window stays active",
			status:   MembershipStatusActive,
			expires:  now.Add(24 * time.Hour),
			expected: MembershipStatusActive,
		},
		{
			name:     "active past expiry reads as expired",
			status:   MembershipStatusActive,
			expires:  now.Add(-time.Second),
			expected: MembershipStatusExpired,
		},
		{
			name:     "active at exact expiry instant stays active",
			status:   MembershipStatusActive,
			expires:  now,
			expected: MembershipStatusActive,
		},
		{
			name:     "cancelled override is reported as stored",
			status:   MembershipStatusCancelled,
			expires:  now.Add(24 * time.Hour),
			expected: MembershipStatusCancelled,
		},
		{
			name:     "stored expired stays expired",
			status:   MembershipStatusExpired,
			expires:  now.Add(24 * time.Hour),
			expected: MembershipStatusExpired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &Membership{Status: tc.status, ExpiresAt: tc.expires}
			assert.Equal(t, tc.expected, m.EffectiveStatus(now))
		})
	}
}

func TestValidMembershipStatus(t *testing.T) {
	assert.True(t, ValidMembershipStatus(MembershipStatusActive))
	assert.True(t, ValidMembershipStatus(MembershipStatusExpired))
	assert.True(t, ValidMembershipStatus(MembershipStatusCancelled))
	assert.False(t, ValidMembershipStatus("paused"))
	assert.False(t, ValidMembershipStatus(""))
}
