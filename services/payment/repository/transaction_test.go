package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/models"
)

func setupPaymentRepoTest(t *testing.T) (*PaymentRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &PaymentRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestUpdateStatusIfPending(t *testing.T) {
	testCases := []struct {
		name         string
		rowsAffected int64
		transitioned bool
	}{
		{name: "pending row transitions", rowsAffected: 1, transitioned: true},
		{name: "terminal row is untouched", rowsAffected: 0, transitioned: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPaymentRepoTest(t)
			defer cleanup()

			now := time.Now()
			method := "bank_transfer"
			txn := &models.Transaction{
				ID:            uuid.New(),
				Status:        models.TransactionStatusPaid,
				PaymentMethod: &method,
				RawResponse:   []byte(`{"transaction_status":"settlement"}`),
				PaidAt:        &now,
			}

			mock.ExpectExec(`UPDATE transactions`).
				WithArgs(txn.Status, txn.PaymentMethod, txn.RawResponse, txn.PaidAt, txn.ID).
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			transitioned, err := repo.UpdateStatusIfPending(context.Background(), txn)

			require.NoError(t, err)
			assert.Equal(t, tc.transitioned, transitioned)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateTransaction(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	now := time.Now()
	txn := &models.Transaction{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		PackageID:     uuid.New(),
		TransactionID: "TXN-abc",
		OrderID:       "ORDER-1756600000-user",
		Amount:        decimal.NewFromInt(150000),
		Status:        models.TransactionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.UserID, txn.PackageID, txn.TransactionID, txn.OrderID,
			txn.Amount, txn.Status, txn.CreatedAt, txn.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTransaction(context.Background(), txn)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByOrderID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, subscription_package_id")).
		WithArgs("ORDER-unknown").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	txn, err := repo.GetTransactionByOrderID(context.Background(), "ORDER-unknown")

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	assert.Nil(t, txn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMembershipID(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	txnID := uuid.New()
	membershipID := uuid.New()

	mock.ExpectExec("UPDATE transactions").
		WithArgs(membershipID, txnID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetMembershipID(context.Background(), txnID, membershipID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
