package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adrnf/langganin/services/catalog PackageUseCase

// PackageUseCase defines the interface for catalog use cases. Mutations
// are admin-gated; listing is role-scoped (admins see every row, members
// the active catalog).
type PackageUseCase interface {
	CreatePackage(ctx context.Context, actor access.Actor, req *models.CreatePackageRequest) (*models.SubscriptionPackage, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*models.SubscriptionPackage, error)
	UpdatePackage(ctx context.Context, actor access.Actor, id uuid.UUID, req *models.UpdatePackageRequest) (*models.SubscriptionPackage, error)
	DeletePackage(ctx context.Context, actor access.Actor, id uuid.UUID) error
	ListPackages(ctx context.Context, actor access.Actor) ([]*models.SubscriptionPackage, error)
}
