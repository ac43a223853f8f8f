package payment

import (
	"context"

	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adrnf/langganin/services/payment SnapTokenProvider,PaymentGW

// SnapTokenProvider issues the opaque token the client hands to the
// payment widget.
type SnapTokenProvider interface {
	CreateSnapToken(ctx context.Context, txn *models.Transaction, pkg *models.SubscriptionPackage) (string, error)
}

// PaymentGW defines the interface for publishing payment events
type PaymentGW interface {
	PublishPaymentPaid(ctx context.Context, txn *models.Transaction) error
}
