package membership

import (
	"context"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adrnf/langganin/services/membership MembershipUseCase

// MembershipUseCase defines the interface for membership use cases.
// Grant is invoked by the transaction ledger on a pending→paid
// transition; the CRUD operations back the /memberships surface.
type MembershipUseCase interface {
	Grant(ctx context.Context, txn *models.Transaction) (*models.Membership, error)
	GetMembership(ctx context.Context, actor access.Actor, id uuid.UUID) (*models.Membership, error)
	UpdateMembership(ctx context.Context, actor access.Actor, id uuid.UUID, req *models.UpdateMembershipRequest) (*models.Membership, error)
	DeleteMembership(ctx context.Context, actor access.Actor, id uuid.UUID) error
	ListMemberships(ctx context.Context, actor access.Actor) ([]*models.Membership, error)
}
