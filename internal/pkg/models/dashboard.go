package models

import "github.com/shopspring/decimal"

// AdminDashboardStats are the aggregate counters shown on the admin view.
// MonthlyRevenue sums paid transaction amounts created in the current
// calendar month, not a rolling 30 days.
type AdminDashboardStats struct {
	TotalMembers      int             `json:"total_members"`
	ActiveMemberships int             `json:"active_memberships"`
	TotalPackages     int             `json:"total_packages"`
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
}

// AdminDashboard is the reporting view for administrators.
type AdminDashboard struct {
	Stats              AdminDashboardStats `json:"stats"`
	RecentTransactions []*Transaction      `json:"recent_transactions"`
	RecentMemberships  []*Membership       `json:"recent_memberships"`
}

// MemberDashboard is the reporting view for a member. CurrentMembership
// is the latest membership by start time regardless of validity; its
// effective status is computed at read time.
type MemberDashboard struct {
	CurrentMembership  *Membership            `json:"current_membership,omitempty"`
	MembershipHistory  []*Membership          `json:"membership_history"`
	TransactionHistory []*Transaction         `json:"transaction_history"`
	AvailablePackages  []*SubscriptionPackage `json:"available_packages"`
}
