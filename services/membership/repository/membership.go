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
	"github.com/adrnf/langganin/services/membership"
)

// MembershipRepo implements the membership.MembershipRepo interface
type MembershipRepo struct {
	db *sqlx.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *sqlx.DB) membership.MembershipRepo {
	return &MembershipRepo{db: db}
}

// CreateMembership inserts a new membership row
func (r *MembershipRepo) CreateMembership(ctx context.Context, m *models.Membership) error {
	query := `
		INSERT INTO memberships (
			id, user_id, subscription_package_id, started_at, expires_at, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		m.ID,
		m.UserID,
		m.PackageID,
		m.StartedAt,
		m.ExpiresAt,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}

// GetMembershipByID retrieves a membership with its package joined in
func (r *MembershipRepo) GetMembershipByID(ctx context.Context, id uuid.UUID) (*models.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.subscription_package_id, m.started_at, m.expires_at,
		       m.status, m.created_at, m.updated_at,
		       p.id AS pkg_id, p.name AS pkg_name, p.description AS pkg_description,
		       p.duration_months AS pkg_duration_months, p.price AS pkg_price, p.is_active AS pkg_is_active
		FROM memberships m
		JOIN subscription_packages p ON p.id = m.subscription_package_id
		WHERE m.id = $1
	`

	row := r.db.QueryRowxContext(ctx, query, id)

	m, err := scanMembershipWithPackage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

// UpdateMembershipStatus overrides the stored membership status
func (r *MembershipRepo) UpdateMembershipStatus(ctx context.Context, id uuid.UUID, status models.MembershipStatus) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE memberships
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update membership status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrMembershipNotFound
	}

	return nil
}

// DeleteMembership removes a membership row
func (r *MembershipRepo) DeleteMembership(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrMembershipNotFound
	}

	return nil
}

// ListMemberships retrieves all memberships with user and package joined, newest first
func (r *MembershipRepo) ListMemberships(ctx context.Context) ([]*models.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.subscription_package_id, m.started_at, m.expires_at,
		       m.status, m.created_at, m.updated_at,
		       p.id AS pkg_id, p.name AS pkg_name, p.description AS pkg_description,
		       p.duration_months AS pkg_duration_months, p.price AS pkg_price, p.is_active AS pkg_is_active,
		       u.id AS user_id2, u.name AS user_name, u.email AS user_email, u.role AS user_role
		FROM memberships m
		JOIN subscription_packages p ON p.id = m.subscription_package_id
		JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	memberships := []*models.Membership{}
	for rows.Next() {
		m, err := scanMembershipWithUserAndPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

// ListMembershipsByUser retrieves one user's memberships with package joined, newest first
func (r *MembershipRepo) ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.subscription_package_id, m.started_at, m.expires_at,
		       m.status, m.created_at, m.updated_at,
		       p.id AS pkg_id, p.name AS pkg_name, p.description AS pkg_description,
		       p.duration_months AS pkg_duration_months, p.price AS pkg_price, p.is_active AS pkg_is_active
		FROM memberships m
		JOIN subscription_packages p ON p.id = m.subscription_package_id
		WHERE m.user_id = $1
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships for user: %w", err)
	}
	defer rows.Close()

	memberships := []*models.Membership{}
	for rows.Next() {
		m, err := scanMembershipWithPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

// rowScanner abstracts *sqlx.Row and *sqlx.Rows for the scan helpers
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMembershipWithPackage(row rowScanner) (*models.Membership, error) {
	m := &models.Membership{}
	pkg := &models.SubscriptionPackage{}

	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.PackageID,
		&m.StartedAt,
		&m.ExpiresAt,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.DurationMonths,
		&pkg.Price,
		&pkg.IsActive,
	)
	if err != nil {
		return nil, err
	}

	m.Package = pkg
	return m, nil
}

func scanMembershipWithUserAndPackage(row rowScanner) (*models.Membership, error) {
	m := &models.Membership{}
	pkg := &models.SubscriptionPackage{}
	user := &models.User{}

	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.PackageID,
		&m.StartedAt,
		&m.ExpiresAt,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.DurationMonths,
		&pkg.Price,
		&pkg.IsActive,
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
	)
	if err != nil {
		return nil, err
	}

	m.Package = pkg
	m.User = user
	return m, nil
}
