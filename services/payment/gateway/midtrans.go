package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/payment"
)

// MidtransGW issues mock snap tokens. A real integration would sign a
// charge request against the Midtrans Snap API with the configured
// server key; the token shape and call site stay the same.
type MidtransGW struct {
	cfg models.MidtransConfig
}

// NewMidtransGW creates a new snap token provider
func NewMidtransGW(cfg models.MidtransConfig) payment.SnapTokenProvider {
	return &MidtransGW{cfg: cfg}
}

// CreateSnapToken returns the opaque widget token for a checkout.
// txn may be nil when the client is previewing a package before a
// transaction exists.
func (g *MidtransGW) CreateSnapToken(_ context.Context, _ *models.Transaction, _ *models.SubscriptionPackage) (string, error) {
	return fmt.Sprintf("snap-token-%s", uuid.NewString()), nil
}
