package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adrnf/langganin/services/dashboard DashboardRepo,ActivePackageLister

// DashboardRepo defines the reporting queries behind the dashboard views
type DashboardRepo interface {
	CountMembers(ctx context.Context) (int, error)
	CountActiveMemberships(ctx context.Context) (int, error)
	CountPackages(ctx context.Context) (int, error)
	SumPaidAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	RecentTransactions(ctx context.Context, limit int) ([]*models.Transaction, error)
	RecentMemberships(ctx context.Context, limit int) ([]*models.Membership, error)
	LatestMembershipByUser(ctx context.Context, userID uuid.UUID) (*models.Membership, error)
	RecentMembershipsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Membership, error)
	RecentTransactionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error)
}

// ActivePackageLister provides the active catalog for the member view.
// Satisfied by the catalog repository.
type ActivePackageLister interface {
	ListActivePackages(ctx context.Context) ([]*models.SubscriptionPackage, error)
}
