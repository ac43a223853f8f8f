package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/logger"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/payment"
)

// PaymentUC implements the payment.PaymentUseCase interface
type PaymentUC struct {
	cfg      *models.Config
	repo     payment.PaymentRepo
	packages payment.PackageReader
	grantor  payment.MembershipGrantor
	snap     payment.SnapTokenProvider
	gw       payment.PaymentGW
	validate *validator.Validate
	timeNow  func() time.Time
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payment.PaymentRepo,
	packages payment.PackageReader,
	grantor payment.MembershipGrantor,
	snap payment.SnapTokenProvider,
	gw payment.PaymentGW,
) payment.PaymentUseCase {
	return &PaymentUC{
		cfg:      cfg,
		repo:     repo,
		packages: packages,
		grantor:  grantor,
		snap:     snap,
		gw:       gw,
		validate: validator.New(),
		timeNow:  time.Now,
	}
}

// PreparePayment returns checkout info for a package before any
// transaction exists: the package itself plus a widget token.
func (uc *PaymentUC) PreparePayment(ctx context.Context, actor access.Actor, packageID uuid.UUID) (*models.CheckoutResponse, error) {
	pkg, err := uc.packages.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !pkg.IsActive {
		return nil, fmt.Errorf("prepare payment: %w", apperrors.ErrInvalidPackage)
	}

	token, err := uc.snap.CreateSnapToken(ctx, nil, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to create snap token: %w", err)
	}

	return &models.CheckoutResponse{
		Package:   pkg,
		SnapToken: token,
	}, nil
}

// InitiatePayment creates a pending transaction for the actor against
// the chosen package. The amount is snapshotted from the package price
// at this moment and never follows later package edits.
func (uc *PaymentUC) InitiatePayment(ctx context.Context, actor access.Actor, req *models.InitiatePaymentRequest) (*models.CheckoutResponse, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	pkg, err := uc.packages.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.IsActive {
		return nil, fmt.Errorf("initiate payment: %w", apperrors.ErrInvalidPackage)
	}

	now := uc.timeNow()
	txn := &models.Transaction{
		ID:            uuid.New(),
		UserID:        actor.ID,
		PackageID:     pkg.ID,
		TransactionID: fmt.Sprintf("TXN-%s", uuid.NewString()),
		OrderID:       fmt.Sprintf("ORDER-%d-%s", now.Unix(), actor.ID),
		Amount:        pkg.Price,
		Status:        models.TransactionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to initiate payment: %w", err)
	}

	token, err := uc.snap.CreateSnapToken(ctx, txn, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to create snap token: %w", err)
	}

	txn.Package = pkg
	return &models.CheckoutResponse{
		Transaction: txn,
		Package:     pkg,
		SnapToken:   token,
	}, nil
}

// HandleCallback applies a gateway notification to the ledger.
// Mapping: capture/settlement → paid, pending → pending, anything
// else → failed. Transitions only fire while the row is still pending,
// so a replayed paid callback is a no-op success and grants nothing.
// A real pending→paid transition grants the membership synchronously,
// links it back onto the transaction and publishes payments.paid.
func (uc *PaymentUC) HandleCallback(ctx context.Context, notification *models.PaymentNotification) (*models.Transaction, error) {
	txn, err := uc.repo.GetTransactionByOrderID(ctx, notification.OrderID)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}
	txn.RawResponse = raw
	if notification.PaymentType != "" {
		method := notification.PaymentType
		txn.PaymentMethod = &method
	}

	switch notification.TransactionStatus {
	case models.GatewayStatusCapture, models.GatewayStatusSettlement:
		now := uc.timeNow()
		txn.Status = models.TransactionStatusPaid
		txn.PaidAt = &now
	case models.GatewayStatusPending:
		txn.Status = models.TransactionStatusPending
	default:
		txn.Status = models.TransactionStatusFailed
	}

	transitioned, err := uc.repo.UpdateStatusIfPending(ctx, txn)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		// Terminal already; a late or replayed callback changes nothing.
		return uc.repo.GetTransactionByOrderID(ctx, notification.OrderID)
	}

	if txn.Status == models.TransactionStatusPaid && txn.MembershipID == nil {
		m, err := uc.grantor.Grant(ctx, txn)
		if err != nil {
			return nil, fmt.Errorf("failed to grant membership: %w", err)
		}

		if err := uc.repo.SetMembershipID(ctx, txn.ID, m.ID); err != nil {
			return nil, err
		}
		txn.MembershipID = &m.ID

		if err := uc.gw.PublishPaymentPaid(ctx, txn); err != nil {
			// The ledger row is committed; event delivery is best effort.
			logger.Warn("Failed to publish payment paid event",
				logger.String("order_id", txn.OrderID),
				logger.Err(err))
		}
	}

	return txn, nil
}

// GetTransaction retrieves a transaction. Members may only read their
// own rows; admins may read any.
func (uc *PaymentUC) GetTransaction(ctx context.Context, actor access.Actor, id uuid.UUID) (*models.Transaction, error) {
	txn, err := uc.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.Can(access.ActionTransactionViewAny) && actor.ID != txn.UserID {
		return nil, fmt.Errorf("get transaction: %w", apperrors.ErrForbidden)
	}

	return txn, nil
}

// ListTransactions lists transactions for the actor: admins get every
// row, members get their own history.
func (uc *PaymentUC) ListTransactions(ctx context.Context, actor access.Actor) ([]*models.Transaction, error) {
	if actor.Can(access.ActionTransactionViewAny) {
		return uc.repo.ListAllTransactions(ctx)
	}
	return uc.repo.ListTransactionsByUser(ctx, actor.ID)
}
