package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adrnf/langganin/services/payment PaymentUseCase

// PaymentUseCase defines the interface for payment use cases
type PaymentUseCase interface {
	PreparePayment(ctx context.Context, actor access.Actor, packageID uuid.UUID) (*models.CheckoutResponse, error)
	InitiatePayment(ctx context.Context, actor access.Actor, req *models.InitiatePaymentRequest) (*models.CheckoutResponse, error)
	HandleCallback(ctx context.Context, notification *models.PaymentNotification) (*models.Transaction, error)
	GetTransaction(ctx context.Context, actor access.Actor, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, actor access.Actor) ([]*models.Transaction, error)
}
