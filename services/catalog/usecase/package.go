package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/catalog"
)

// PackageUC implements the catalog.PackageUseCase interface
type PackageUC struct {
	cfg      *models.Config
	repo     catalog.PackageRepo
	validate *validator.Validate
}

// NewPackageUC creates a new catalog use case
func NewPackageUC(cfg *models.Config, repo catalog.PackageRepo) catalog.PackageUseCase {
	return &PackageUC{
		cfg:      cfg,
		repo:     repo,
		validate: validator.New(),
	}
}

// CreatePackage creates a subscription package. Admin only.
func (uc *PackageUC) CreatePackage(ctx context.Context, actor access.Actor, req *models.CreatePackageRequest) (*models.SubscriptionPackage, error) {
	if !actor.Can(access.ActionPackageCreate) {
		return nil, fmt.Errorf("create subscription package: %w", apperrors.ErrForbidden)
	}

	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidationFailed)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	pkg := &models.SubscriptionPackage{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		DurationMonths: req.DurationMonths,
		Price:          req.Price,
		IsActive:       isActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.CreatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	return pkg, nil
}

// GetPackage retrieves a subscription package by ID
func (uc *PackageUC) GetPackage(ctx context.Context, id uuid.UUID) (*models.SubscriptionPackage, error) {
	return uc.repo.GetPackageByID(ctx, id)
}

// UpdatePackage edits a subscription package. Admin only. Edits never
// cascade into transactions or memberships created earlier.
func (uc *PackageUC) UpdatePackage(ctx context.Context, actor access.Actor, id uuid.UUID, req *models.UpdatePackageRequest) (*models.SubscriptionPackage, error) {
	if !actor.Can(access.ActionPackageUpdate) {
		return nil, fmt.Errorf("update subscription package: %w", apperrors.ErrForbidden)
	}

	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidationFailed)
	}

	pkg, err := uc.repo.GetPackageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.DurationMonths = req.DurationMonths
	pkg.Price = req.Price
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	pkg.UpdatedAt = time.Now()

	if err := uc.repo.UpdatePackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	return pkg, nil
}

// DeletePackage removes a subscription package. Admin only.
func (uc *PackageUC) DeletePackage(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if !actor.Can(access.ActionPackageDelete) {
		return fmt.Errorf("delete subscription package: %w", apperrors.ErrForbidden)
	}

	return uc.repo.DeletePackage(ctx, id)
}

// ListPackages lists packages for the actor: admins get every row,
// members get the active catalog.
func (uc *PackageUC) ListPackages(ctx context.Context, actor access.Actor) ([]*models.SubscriptionPackage, error) {
	if actor.Can(access.ActionPackageListAll) {
		return uc.repo.ListPackages(ctx)
	}
	return uc.repo.ListActivePackages(ctx)
}
