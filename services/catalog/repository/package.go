package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/catalog"
)

// PackageRepo implements the catalog.PackageRepo interface
type PackageRepo struct {
	db *sqlx.DB
}

// NewPackageRepository creates a new subscription package repository
func NewPackageRepository(db *sqlx.DB) catalog.PackageRepo {
	return &PackageRepo{db: db}
}

// CreatePackage inserts a new subscription package
func (r *PackageRepo) CreatePackage(ctx context.Context, pkg *models.SubscriptionPackage) error {
	query := `
		INSERT INTO subscription_packages (
			id, name, description, duration_months, price, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.DurationMonths,
		pkg.Price,
		pkg.IsActive,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create subscription package: %w", err)
	}

	return nil
}

// GetPackageByID retrieves a subscription package by ID
func (r *PackageRepo) GetPackageByID(ctx context.Context, id uuid.UUID) (*models.SubscriptionPackage, error) {
	query := `
		SELECT id, name, description, duration_months, price, is_active, created_at, updated_at
		FROM subscription_packages
		WHERE id = $1
	`

	pkg := &models.SubscriptionPackage{}
	if err := r.db.GetContext(ctx, pkg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvalidPackage
		}
		return nil, fmt.Errorf("failed to get subscription package: %w", err)
	}

	return pkg, nil
}

// UpdatePackage updates a subscription package
func (r *PackageRepo) UpdatePackage(ctx context.Context, pkg *models.SubscriptionPackage) error {
	query := `
		UPDATE subscription_packages
		SET name = $1, description = $2, duration_months = $3, price = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		pkg.Name,
		pkg.Description,
		pkg.DurationMonths,
		pkg.Price,
		pkg.IsActive,
		pkg.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrInvalidPackage
	}

	return nil
}

// DeletePackage removes a subscription package
func (r *PackageRepo) DeletePackage(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subscription_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrInvalidPackage
	}

	return nil
}

// ListPackages retrieves all subscription packages, newest first
func (r *PackageRepo) ListPackages(ctx context.Context) ([]*models.SubscriptionPackage, error) {
	query := `
		SELECT id, name, description, duration_months, price, is_active, created_at, updated_at
		FROM subscription_packages
		ORDER BY created_at DESC
	`

	packages := []*models.SubscriptionPackage{}
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, fmt.Errorf("failed to list subscription packages: %w", err)
	}

	return packages, nil
}

// ListActivePackages retrieves the purchasable catalog
func (r *PackageRepo) ListActivePackages(ctx context.Context) ([]*models.SubscriptionPackage, error) {
	query := `
		SELECT id, name, description, duration_months, price, is_active, created_at, updated_at
		FROM subscription_packages
		WHERE is_active = true
		ORDER BY price ASC
	`

	packages := []*models.SubscriptionPackage{}
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, fmt.Errorf("failed to list active subscription packages: %w", err)
	}

	return packages, nil
}
