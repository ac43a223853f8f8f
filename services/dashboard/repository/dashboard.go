package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/dashboard"
)

// DashboardRepo implements the dashboard.DashboardRepo interface
type DashboardRepo struct {
	db *sqlx.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *sqlx.DB) dashboard.DashboardRepo {
	return &DashboardRepo{db: db}
}

// CountMembers counts users holding the member role
func (r *DashboardRepo) CountMembers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE role = 'member'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

// CountActiveMemberships counts memberships stored as active
func (r *DashboardRepo) CountActiveMemberships(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM memberships WHERE status = 'active'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count active memberships: %w", err)
	}
	return count, nil
}

// CountPackages counts all subscription packages
func (r *DashboardRepo) CountPackages(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM subscription_packages`)
	if err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return count, nil
}

// SumPaidAmountBetween sums paid transaction amounts created in [from, to)
func (r *DashboardRepo) SumPaidAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.GetContext(ctx, &sum, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE status = 'paid' AND created_at >= $1 AND created_at < $2
	`, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum paid amounts: %w", err)
	}
	return sum, nil
}

// RecentTransactions retrieves the newest transactions with user and package joined
func (r *DashboardRepo) RecentTransactions(ctx context.Context, limit int) ([]*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.subscription_package_id, t.membership_id, t.transaction_id,
		       t.midtrans_order_id, t.amount, t.status, t.payment_method,
		       t.paid_at, t.created_at, t.updated_at,
		       p.id, p.name, p.description, p.duration_months, p.price, p.is_active,
		       u.id, u.name, u.email, u.role
		FROM transactions t
		JOIN subscription_packages p ON p.id = t.subscription_package_id
		JOIN users u ON u.id = t.user_id
		ORDER BY t.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		txn := &models.Transaction{}
		pkg := &models.SubscriptionPackage{}
		user := &models.User{}
		err := rows.Scan(
			&txn.ID, &txn.UserID, &txn.PackageID, &txn.MembershipID, &txn.TransactionID,
			&txn.OrderID, &txn.Amount, &txn.Status, &txn.PaymentMethod,
			&txn.PaidAt, &txn.CreatedAt, &txn.UpdatedAt,
			&pkg.ID, &pkg.Name, &pkg.Description, &pkg.DurationMonths, &pkg.Price, &pkg.IsActive,
			&user.ID, &user.Name, &user.Email, &user.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Package = pkg
		txn.User = user
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// RecentMemberships retrieves the newest memberships with user and package joined
func (r *DashboardRepo) RecentMemberships(ctx context.Context, limit int) ([]*models.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.subscription_package_id, m.started_at, m.expires_at,
		       m.status, m.created_at, m.updated_at,
		       p.id, p.name, p.description, p.duration_months, p.price, p.is_active,
		       u.id, u.name, u.email, u.role
		FROM memberships m
		JOIN subscription_packages p ON p.id = m.subscription_package_id
		JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent memberships: %w", err)
	}
	defer rows.Close()

	memberships := []*models.Membership{}
	for rows.Next() {
		m, err := scanMembership(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

// LatestMembershipByUser retrieves the user's most recently started
// membership regardless of validity
func (r *DashboardRepo) LatestMembershipByUser(ctx context.Context, userID uuid.UUID) (*models.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.subscription_package_id, m.started_at, m.expires_at,
		       m.status, m.created_at, m.updated_at,
		       p.id, p.name, p.description, p.duration_months, p.price, p.is_active
		FROM memberships m
		JOIN subscription_packages p ON p.id = m.subscription_package_id
		WHERE m.user_id = $1
		ORDER BY m.started_at DESC
		LIMIT 1
	`

	row := r.db.QueryRowxContext(ctx, query, userID)
	m, err := scanMembership(row, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get latest membership: %w", err)
	}

	return m, nil
}

// RecentMembershipsByUser retrieves the user's newest memberships with package joined
func (r *DashboardRepo) RecentMembershipsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Membership, error) {
	query := `
		SELECT m.id, m.user_id, m.subscription_package_id, m.started_at, m.expires_at,
		       m.status, m.created_at, m.updated_at,
		       p.id, p.name, p.description, p.duration_months, p.price, p.is_active
		FROM memberships m
		JOIN subscription_packages p ON p.id = m.subscription_package_id
		WHERE m.user_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryxContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships for user: %w", err)
	}
	defer rows.Close()

	memberships := []*models.Membership{}
	for rows.Next() {
		m, err := scanMembership(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

// RecentTransactionsByUser retrieves the user's newest transactions with package joined
func (r *DashboardRepo) RecentTransactionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.subscription_package_id, t.membership_id, t.transaction_id,
		       t.midtrans_order_id, t.amount, t.status, t.payment_method,
		       t.paid_at, t.created_at, t.updated_at,
		       p.id, p.name, p.description, p.duration_months, p.price, p.is_active
		FROM transactions t
		JOIN subscription_packages p ON p.id = t.subscription_package_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryxContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user: %w", err)
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		txn := &models.Transaction{}
		pkg := &models.SubscriptionPackage{}
		err := rows.Scan(
			&txn.ID, &txn.UserID, &txn.PackageID, &txn.MembershipID, &txn.TransactionID,
			&txn.OrderID, &txn.Amount, &txn.Status, &txn.PaymentMethod,
			&txn.PaidAt, &txn.CreatedAt, &txn.UpdatedAt,
			&pkg.ID, &pkg.Name, &pkg.Description, &pkg.DurationMonths, &pkg.Price, &pkg.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Package = pkg
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMembership(row rowScanner, withUser bool) (*models.Membership, error) {
	m := &models.Membership{}
	pkg := &models.SubscriptionPackage{}

	dest := []interface{}{
		&m.ID, &m.UserID, &m.PackageID, &m.StartedAt, &m.ExpiresAt,
		&m.Status, &m.CreatedAt, &m.UpdatedAt,
		&pkg.ID, &pkg.Name, &pkg.Description, &pkg.DurationMonths, &pkg.Price, &pkg.IsActive,
	}

	var user *models.User
	if withUser {
		user = &models.User{}
		dest = append(dest, &user.ID, &user.Name, &user.Email, &user.Role)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	m.Package = pkg
	m.User = user
	return m, nil
}
