package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the internal lifecycle state of a payment attempt.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusPaid      TransactionStatus = "paid"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Gateway status vocabulary delivered on the payment callback.
const (
	GatewayStatusCapture    = "capture"
	GatewayStatusSettlement = "settlement"
	GatewayStatusPending    = "pending"
)

// Transaction records one payment attempt against a subscription package.
// Amount is a snapshot of the package price at initiation time and never
// follows later package edits. Transactions are created at checkout,
// mutated only by the gateway callback, and never deleted.
type Transaction struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	UserID        uuid.UUID         `json:"user_id" db:"user_id"`
	PackageID     uuid.UUID         `json:"subscription_package_id" db:"subscription_package_id"`
	MembershipID  *uuid.UUID        `json:"membership_id,omitempty" db:"membership_id"`
	TransactionID string            `json:"transaction_id" db:"transaction_id"`
	OrderID       string            `json:"order_id" db:"midtrans_order_id"`
	Amount        decimal.Decimal   `json:"amount" db:"amount"`
	Status        TransactionStatus `json:"status" db:"status"`
	PaymentMethod *string           `json:"payment_method,omitempty" db:"payment_method"`
	RawResponse   types.JSONText    `json:"midtrans_response,omitempty" db:"midtrans_response"`
	PaidAt        *time.Time        `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`

	// Joined views for reporting reads, not persisted on this row.
	User    *User                `json:"user,omitempty" db:"-"`
	Package *SubscriptionPackage `json:"package,omitempty" db:"-"`
}

// PaymentNotification is the callback payload delivered by the gateway.
// Signature verification belongs to the gateway integration boundary and
// is out of scope here.
type PaymentNotification struct {
	OrderID           string `json:"order_id" query:"order_id"`
	TransactionStatus string `json:"transaction_status" query:"transaction_status"`
	FraudStatus       string `json:"fraud_status" query:"fraud_status"`
	PaymentType       string `json:"payment_type" query:"payment_type"`
}

// InitiatePaymentRequest is the payload for starting a checkout.
type InitiatePaymentRequest struct {
	PackageID uuid.UUID `json:"subscription_package_id" validate:"required"`
}

// CheckoutResponse is returned after a checkout is initiated: the pending
// transaction plus the opaque gateway token the client hands to the
// payment widget.
type CheckoutResponse struct {
	Transaction *Transaction         `json:"transaction,omitempty"`
	Package     *SubscriptionPackage `json:"package"`
	SnapToken   string               `json:"snap_token"`
}
