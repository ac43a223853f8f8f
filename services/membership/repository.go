package membership

import (
	"context"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adrnf/langganin/services/membership MembershipRepo,PackageReader

// MembershipRepo defines the interface for membership storage
type MembershipRepo interface {
	CreateMembership(ctx context.Context, m *models.Membership) error
	GetMembershipByID(ctx context.Context, id uuid.UUID) (*models.Membership, error)
	UpdateMembershipStatus(ctx context.Context, id uuid.UUID, status models.MembershipStatus) error
	DeleteMembership(ctx context.Context, id uuid.UUID) error
	ListMemberships(ctx context.Context) ([]*models.Membership, error)
	ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Membership, error)
}

// PackageReader provides the package attributes the grantor needs.
// Satisfied by the catalog repository.
type PackageReader interface {
	GetPackageByID(ctx context.Context, id uuid.UUID) (*models.SubscriptionPackage, error)
}
