package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adrnf/langganin/internal/pkg/constants"
	"github.com/adrnf/langganin/internal/pkg/models"
	natspkg "github.com/adrnf/langganin/internal/pkg/nats"
	"github.com/adrnf/langganin/services/payment"
)

// PaymentGW implements the payment.PaymentGW interface
type PaymentGW struct {
	natsClient *natspkg.Client
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(natsClient *natspkg.Client) payment.PaymentGW {
	return &PaymentGW{natsClient: natsClient}
}

// PublishPaymentPaid publishes a paid transaction to NATS
func (g *PaymentGW) PublishPaymentPaid(_ context.Context, txn *models.Transaction) error {
	data, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectPaymentPaid, data)
}
