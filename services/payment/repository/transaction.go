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
	"github.com/adrnf/langganin/services/payment"
)

// PaymentRepo implements the payment.PaymentRepo interface
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) payment.PaymentRepo {
	return &PaymentRepo{db: db}
}

// CreateTransaction inserts a new pending transaction
func (r *PaymentRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, user_id, subscription_package_id, transaction_id, midtrans_order_id,
			amount, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		txn.ID,
		txn.UserID,
		txn.PackageID,
		txn.TransactionID,
		txn.OrderID,
		txn.Amount,
		txn.Status,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction with its package joined in
func (r *PaymentRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.subscription_package_id, t.membership_id, t.transaction_id,
		       t.midtrans_order_id, t.amount, t.status, t.payment_method, t.midtrans_response,
		       t.paid_at, t.created_at, t.updated_at,
		       p.id AS pkg_id, p.name AS pkg_name, p.description AS pkg_description,
		       p.duration_months AS pkg_duration_months, p.price AS pkg_price, p.is_active AS pkg_is_active
		FROM transactions t
		JOIN subscription_packages p ON p.id = t.subscription_package_id
		WHERE t.id = $1
	`

	txn, err := scanTransactionWithPackage(r.db.QueryRowxContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return txn, nil
}

// GetTransactionByOrderID retrieves a transaction by its gateway order id
func (r *PaymentRepo) GetTransactionByOrderID(ctx context.Context, orderID string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, subscription_package_id, membership_id, transaction_id,
		       midtrans_order_id, amount, status, payment_method, midtrans_response,
		       paid_at, created_at, updated_at
		FROM transactions
		WHERE midtrans_order_id = $1
	`

	txn := &models.Transaction{}
	if err := r.db.GetContext(ctx, txn, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by order id: %w", err)
	}

	return txn, nil
}

// UpdateStatusIfPending applies a callback-driven transition only while
// the row is still pending. The WHERE clause serializes concurrent
// callbacks for the same order: exactly one of them observes the
// transition, replays and late arrivals see false.
func (r *PaymentRepo) UpdateStatusIfPending(ctx context.Context, txn *models.Transaction) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1, payment_method = $2, midtrans_response = $3, paid_at = $4, updated_at = NOW()
		WHERE id = $5 AND status = 'pending'
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		txn.Status,
		txn.PaymentMethod,
		txn.RawResponse,
		txn.PaidAt,
		txn.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// SetMembershipID links the granted membership back onto the transaction
func (r *PaymentRepo) SetMembershipID(ctx context.Context, txnID uuid.UUID, membershipID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET membership_id = $1, updated_at = NOW()
		WHERE id = $2
	`, membershipID, txnID)
	if err != nil {
		return fmt.Errorf("failed to set membership id: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// ListTransactionsByUser retrieves one user's transactions with package joined, newest first
func (r *PaymentRepo) ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.subscription_package_id, t.membership_id, t.transaction_id,
		       t.midtrans_order_id, t.amount, t.status, t.payment_method, t.midtrans_response,
		       t.paid_at, t.created_at, t.updated_at,
		       p.id AS pkg_id, p.name AS pkg_name, p.description AS pkg_description,
		       p.duration_months AS pkg_duration_months, p.price AS pkg_price, p.is_active AS pkg_is_active
		FROM transactions t
		JOIN subscription_packages p ON p.id = t.subscription_package_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user: %w", err)
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		txn, err := scanTransactionWithPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// ListAllTransactions retrieves every transaction with user and package joined, newest first
func (r *PaymentRepo) ListAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.subscription_package_id, t.membership_id, t.transaction_id,
		       t.midtrans_order_id, t.amount, t.status, t.payment_method, t.midtrans_response,
		       t.paid_at, t.created_at, t.updated_at,
		       p.id AS pkg_id, p.name AS pkg_name, p.description AS pkg_description,
		       p.duration_months AS pkg_duration_months, p.price AS pkg_price, p.is_active AS pkg_is_active,
		       u.id AS user_id2, u.name AS user_name, u.email AS user_email, u.role AS user_role
		FROM transactions t
		JOIN subscription_packages p ON p.id = t.subscription_package_id
		JOIN users u ON u.id = t.user_id
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		txn, err := scanTransactionWithUserAndPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// rowScanner abstracts *sqlx.Row and *sqlx.Rows for the scan helpers
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransactionWithPackage(row rowScanner) (*models.Transaction, error) {
	txn := &models.Transaction{}
	pkg := &models.SubscriptionPackage{}

	err := row.Scan(
		&txn.ID,
		&txn.UserID,
		&txn.PackageID,
		&txn.MembershipID,
		&txn.TransactionID,
		&txn.OrderID,
		&txn.Amount,
		&txn.Status,
		&txn.PaymentMethod,
		&txn.RawResponse,
		&txn.PaidAt,
		&txn.CreatedAt,
		&txn.UpdatedAt,
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

	txn.Package = pkg
	return txn, nil
}

func scanTransactionWithUserAndPackage(row rowScanner) (*models.Transaction, error) {
	txn := &models.Transaction{}
	pkg := &models.SubscriptionPackage{}
	user := &models.User{}

	err := row.Scan(
		&txn.ID,
		&txn.UserID,
		&txn.PackageID,
		&txn.MembershipID,
		&txn.TransactionID,
		&txn.OrderID,
		&txn.Amount,
		&txn.Status,
		&txn.PaymentMethod,
		&txn.RawResponse,
		&txn.PaidAt,
		&txn.CreatedAt,
		&txn.UpdatedAt,
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

	txn.Package = pkg
	txn.User = user
	return txn, nil
}
