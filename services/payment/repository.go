package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adrnf/langganin/services/payment PaymentRepo,PackageReader,MembershipGrantor

// PaymentRepo defines the interface for the transaction ledger storage.
// UpdateStatusIfPending performs the conditional transition that keeps
// concurrent and replayed callbacks from clobbering a terminal state:
// it reports whether the row actually moved out of pending.
type PaymentRepo interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetTransactionByOrderID(ctx context.Context, orderID string) (*models.Transaction, error)
	UpdateStatusIfPending(ctx context.Context, txn *models.Transaction) (bool, error)
	SetMembershipID(ctx context.Context, txnID uuid.UUID, membershipID uuid.UUID) error
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error)
	ListAllTransactions(ctx context.Context) ([]*models.Transaction, error)
}

// PackageReader provides the package attributes checkout needs.
// Satisfied by the catalog repository.
type PackageReader interface {
	GetPackageByID(ctx context.Context, id uuid.UUID) (*models.SubscriptionPackage, error)
}

// MembershipGrantor grants the membership for a paid transaction.
// Satisfied by the membership use case.
type MembershipGrantor interface {
	Grant(ctx context.Context, txn *models.Transaction) (*models.Membership, error)
}
