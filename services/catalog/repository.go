package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adrnf/langganin/services/catalog PackageRepo

// PackageRepo defines the interface for subscription package storage
type PackageRepo interface {
	CreatePackage(ctx context.Context, pkg *models.SubscriptionPackage) error
	GetPackageByID(ctx context.Context, id uuid.UUID) (*models.SubscriptionPackage, error)
	UpdatePackage(ctx context.Context, pkg *models.SubscriptionPackage) error
	DeletePackage(ctx context.Context, id uuid.UUID) error
	ListPackages(ctx context.Context) ([]*models.SubscriptionPackage, error)
	ListActivePackages(ctx context.Context) ([]*models.SubscriptionPackage, error)
}
