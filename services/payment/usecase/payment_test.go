package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/payment/mocks"
)

func setupPaymentUCTest(t *testing.T) (*PaymentUC, *mocks.MockPaymentRepo, *mocks.MockPackageReader, *mocks.MockMembershipGrantor, *mocks.MockSnapTokenProvider, *mocks.MockPaymentGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockPackages := mocks.NewMockPackageReader(ctrl)
	mockGrantor := mocks.NewMockMembershipGrantor(ctrl)
	mockSnap := mocks.NewMockSnapTokenProvider(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)

	uc := NewPaymentUC(&models.Config{}, mockRepo, mockPackages, mockGrantor, mockSnap, mockGW).(*PaymentUC)

	return uc, mockRepo, mockPackages, mockGrantor, mockSnap, mockGW
}

func standardPackage() *models.SubscriptionPackage {
	return &models.SubscriptionPackage{
		ID:             uuid.New(),
		Name:           "Standard Plan",
		DurationMonths: 3,
		Price:          decimal.NewFromInt(150000),
		IsActive:       true,
	}
}

func TestInitiatePayment_SnapshotsPackagePrice(t *testing.T) {
	uc, mockRepo, mockPackages, _, mockSnap, _ := setupPaymentUCTest(t)

	pkg := standardPackage()
	actor := access.Actor{ID: uuid.New(), Role: access.RoleMember}

	var created *models.Transaction
	mockPackages.EXPECT().GetPackageByID(gomock.Any(), pkg.ID).Return(pkg, nil)
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			created = txn
			return nil
		})
	mockSnap.EXPECT().CreateSnapToken(gomock.Any(), gomock.Any(), pkg).Return("snap-token-abc", nil)

	checkout, err := uc.InitiatePayment(context.Background(), actor, &models.InitiatePaymentRequest{PackageID: pkg.ID})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.Amount.Equal(pkg.Price), "amount must snapshot the package price")
	assert.Equal(t, models.TransactionStatusPending, created.Status)
	assert.Equal(t, actor.ID, created.UserID)
	assert.Contains(t, created.TransactionID, "TXN-")
	assert.Contains(t, created.OrderID, "ORDER-")
	assert.Equal(t, "snap-token-abc", checkout.SnapToken)
	assert.Equal(t, pkg, checkout.Package)
}

func TestInitiatePayment_InactivePackage(t *testing.T) {
	uc, _, mockPackages, _, _, _ := setupPaymentUCTest(t)

	pkg := standardPackage()
	pkg.IsActive = false

	mockPackages.EXPECT().GetPackageByID(gomock.Any(), pkg.ID).Return(pkg, nil)

	_, err := uc.InitiatePayment(context.Background(), access.Actor{ID: uuid.New(), Role: access.RoleMember},
		&models.InitiatePaymentRequest{PackageID: pkg.ID})

	assert.ErrorIs(t, err, apperrors.ErrInvalidPackage)
}

func TestHandleCallback_StatusMapping(t *testing.T) {
	testCases := []struct {
		name          string
		gatewayStatus string
		expected      models.TransactionStatus
		expectGrant   bool
	}{
		{name: "settlement maps to paid", gatewayStatus: "settlement", expected: models.TransactionStatusPaid, expectGrant: true},
		{name: "capture maps to paid", gatewayStatus: "capture", expected: models.TransactionStatusPaid, expectGrant: true},
		{name: "pending stays pending", gatewayStatus: "pending", expected: models.TransactionStatusPending},
		{name: "deny maps to failed", gatewayStatus: "deny", expected: models.TransactionStatusFailed},
		{name: "expire maps to failed", gatewayStatus: "expire", expected: models.TransactionStatusFailed},
		{name: "cancel maps to failed", gatewayStatus: "cancel", expected: models.TransactionStatusFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, _, mockGrantor, _, mockGW := setupPaymentUCTest(t)

			orderID := "ORDER-1756600000-" + uuid.NewString()
			stored := &models.Transaction{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				PackageID: uuid.New(),
				OrderID:   orderID,
				Status:    models.TransactionStatusPending,
			}

			mockRepo.EXPECT().GetTransactionByOrderID(gomock.Any(), orderID).Return(stored, nil)
			mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, txn *models.Transaction) (bool, error) {
					assert.Equal(t, tc.expected, txn.Status)
					if tc.expected == models.TransactionStatusPaid {
						assert.NotNil(t, txn.PaidAt)
					} else {
						assert.Nil(t, txn.PaidAt)
					}
					assert.NotEmpty(t, txn.RawResponse)
					return true, nil
				})

			if tc.expectGrant {
				membershipID := uuid.New()
				mockGrantor.EXPECT().Grant(gomock.Any(), stored).
					Return(&models.Membership{ID: membershipID, UserID: stored.UserID}, nil)
				mockRepo.EXPECT().SetMembershipID(gomock.Any(), stored.ID, membershipID).Return(nil)
				mockGW.EXPECT().PublishPaymentPaid(gomock.Any(), stored).Return(nil)
			}

			txn, err := uc.HandleCallback(context.Background(), &models.PaymentNotification{
				OrderID:           orderID,
				TransactionStatus: tc.gatewayStatus,
				PaymentType:       "bank_transfer",
			})

			require.NoError(t, err)
			assert.Equal(t, tc.expected, txn.Status)
			if tc.expectGrant {
				assert.NotNil(t, txn.MembershipID)
			}
		})
	}
}

func TestHandleCallback_ReplayedPaidCallbackGrantsNothing(t *testing.T) {
	uc, mockRepo, _, _, _, _ := setupPaymentUCTest(t)

	orderID := "ORDER-1756600000-replay"
	membershipID := uuid.New()
	paidAt := time.Now().Add(-time.Hour)
	terminal := &models.Transaction{
		ID:           uuid.New(),
		OrderID:      orderID,
		Status:       models.TransactionStatusPaid,
		MembershipID: &membershipID,
		PaidAt:       &paidAt,
	}

	// The conditional update observes no pending row, so the replay is a
	// no-op success: no grant, no event, no second membership.
	mockRepo.EXPECT().GetTransactionByOrderID(gomock.Any(), orderID).Return(terminal, nil).Times(2)
	mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), gomock.Any()).Return(false, nil)

	txn, err := uc.HandleCallback(context.Background(), &models.PaymentNotification{
		OrderID:           orderID,
		TransactionStatus: "settlement",
	})

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPaid, txn.Status)
	assert.Equal(t, &membershipID, txn.MembershipID)
}

func TestHandleCallback_UnknownOrderID(t *testing.T) {
	uc, mockRepo, _, _, _, _ := setupPaymentUCTest(t)

	mockRepo.EXPECT().GetTransactionByOrderID(gomock.Any(), "ORDER-nope").
		Return(nil, apperrors.ErrTransactionNotFound)

	_, err := uc.HandleCallback(context.Background(), &models.PaymentNotification{
		OrderID:           "ORDER-nope",
		TransactionStatus: "settlement",
	})

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestHandleCallback_GrantFailurePropagates(t *testing.T) {
	uc, mockRepo, _, mockGrantor, _, _ := setupPaymentUCTest(t)

	orderID := "ORDER-1756600000-fail"
	stored := &models.Transaction{ID: uuid.New(), OrderID: orderID, Status: models.TransactionStatusPending}

	mockRepo.EXPECT().GetTransactionByOrderID(gomock.Any(), orderID).Return(stored, nil)
	mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), gomock.Any()).Return(true, nil)
	mockGrantor.EXPECT().Grant(gomock.Any(), stored).Return(nil, errors.New("db down"))

	_, err := uc.HandleCallback(context.Background(), &models.PaymentNotification{
		OrderID:           orderID,
		TransactionStatus: "settlement",
	})

	assert.Error(t, err)
}

func TestCheckoutToSettlementFlow(t *testing.T) {
	uc, mockRepo, mockPackages, mockGrantor, mockSnap, mockGW := setupPaymentUCTest(t)

	pkg := standardPackage()
	actor := access.Actor{ID: uuid.New(), Role: access.RoleMember}
	membershipID := uuid.New()

	// Stateful repo double so the settlement callback observes the row
	// the checkout created.
	var stored *models.Transaction
	mockPackages.EXPECT().GetPackageByID(gomock.Any(), pkg.ID).Return(pkg, nil)
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			stored = txn
			return nil
		})
	mockSnap.EXPECT().CreateSnapToken(gomock.Any(), gomock.Any(), pkg).Return("snap-token-flow", nil)
	mockRepo.EXPECT().GetTransactionByOrderID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, orderID string) (*models.Transaction, error) {
			require.Equal(t, stored.OrderID, orderID)
			return stored, nil
		})
	mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), gomock.Any()).Return(true, nil)
	mockGrantor.EXPECT().Grant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) (*models.Membership, error) {
			return &models.Membership{ID: membershipID, UserID: txn.UserID, PackageID: txn.PackageID}, nil
		})
	mockRepo.EXPECT().SetMembershipID(gomock.Any(), gomock.Any(), membershipID).Return(nil)
	mockGW.EXPECT().PublishPaymentPaid(gomock.Any(), gomock.Any()).Return(nil)

	checkout, err := uc.InitiatePayment(context.Background(), actor, &models.InitiatePaymentRequest{PackageID: pkg.ID})
	require.NoError(t, err)
	require.Equal(t, models.TransactionStatusPending, checkout.Transaction.Status)

	settled, err := uc.HandleCallback(context.Background(), &models.PaymentNotification{
		OrderID:           checkout.Transaction.OrderID,
		TransactionStatus: "settlement",
		PaymentType:       "gopay",
	})

	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPaid, settled.Status)
	require.NotNil(t, settled.MembershipID)
	assert.Equal(t, membershipID, *settled.MembershipID)
	assert.True(t, settled.Amount.Equal(pkg.Price))
}

func TestGetTransaction_OwnershipGate(t *testing.T) {
	ownerID := uuid.New()
	txnID := uuid.New()
	stored := &models.Transaction{ID: txnID, UserID: ownerID}

	testCases := []struct {
		name      string
		actor     access.Actor
		expectErr error
	}{
		{name: "owner reads own transaction", actor: access.Actor{ID: ownerID, Role: access.RoleMember}},
		{name: "admin reads any transaction", actor: access.Actor{ID: uuid.New(), Role: access.RoleAdmin}},
		{name: "stranger is forbidden", actor: access.Actor{ID: uuid.New(), Role: access.RoleMember}, expectErr: apperrors.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, _, _, _, _ := setupPaymentUCTest(t)
			mockRepo.EXPECT().GetTransactionByID(gomock.Any(), txnID).Return(stored, nil)

			txn, err := uc.GetTransaction(context.Background(), tc.actor, txnID)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, txn)
		})
	}
}

func TestListTransactions_RoleScoped(t *testing.T) {
	t.Run("admin lists every row", func(t *testing.T) {
		uc, mockRepo, _, _, _, _ := setupPaymentUCTest(t)
		all := []*models.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}
		mockRepo.EXPECT().ListAllTransactions(gomock.Any()).Return(all, nil)

		got, err := uc.ListTransactions(context.Background(), access.Actor{ID: uuid.New(), Role: access.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("member lists own history", func(t *testing.T) {
		uc, mockRepo, _, _, _, _ := setupPaymentUCTest(t)
		actor := access.Actor{ID: uuid.New(), Role: access.RoleMember}
		own := []*models.Transaction{{ID: uuid.New(), UserID: actor.ID}}
		mockRepo.EXPECT().ListTransactionsByUser(gomock.Any(), actor.ID).Return(own, nil)

		got, err := uc.ListTransactions(context.Background(), actor)
		require.NoError(t, err)
		assert.Equal(t, own, got)
	})
}

func TestPreparePayment(t *testing.T) {
	uc, _, mockPackages, _, mockSnap, _ := setupPaymentUCTest(t)

	pkg := standardPackage()
	mockPackages.EXPECT().GetPackageByID(gomock.Any(), pkg.ID).Return(pkg, nil)
	mockSnap.EXPECT().CreateSnapToken(gomock.Any(), gomock.Nil(), pkg).Return("snap-token-xyz", nil)

	checkout, err := uc.PreparePayment(context.Background(), access.Actor{ID: uuid.New(), Role: access.RoleMember}, pkg.ID)

	require.NoError(t, err)
	assert.Nil(t, checkout.Transaction)
	assert.Equal(t, pkg, checkout.Package)
	assert.Equal(t, "snap-token-xyz", checkout.SnapToken)
}
