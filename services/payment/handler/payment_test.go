package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/middleware"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/payment/mocks"
)

func TestHandleCallback_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUseCase(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/payment/callback?order_id=ORDER-1756600000-user&transaction_status=settlement&payment_type=bank_transfer", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		HandleCallback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, n *models.PaymentNotification) (*models.Transaction, error) {
			assert.Equal(t, "ORDER-1756600000-user", n.OrderID)
			assert.Equal(t, "settlement", n.TransactionStatus)
			assert.Equal(t, "bank_transfer", n.PaymentType)
			return &models.Transaction{ID: uuid.New(), Status: models.TransactionStatusPaid}, nil
		})

	err := h.HandleCallback(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

func TestHandleCallback_UnknownOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUseCase(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/payment/callback?order_id=ORDER-unknown&transaction_status=settlement", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		HandleCallback(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrTransactionNotFound)

	err := h.HandleCallback(c)

	// The gateway gets a JSON error body, not a 404.
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Transaction not found", response["error"])
}

func TestPaymentSuccess_ForbiddenForStranger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUseCase(ctrl)
	h := NewPaymentHandler(mockUC)

	actor := access.Actor{ID: uuid.New(), Role: access.RoleMember}
	txnID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/payment/success/"+txnID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("transaction")
	c.SetParamValues(txnID.String())
	middleware.SetActor(c, actor)

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), actor, txnID).
		Return(nil, apperrors.ErrForbidden)

	err := h.PaymentSuccess(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestInitiatePayment_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUseCase(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payment", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetActor(c, access.Actor{ID: uuid.New(), Role: access.RoleMember})

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrValidationFailed)

	err := h.InitiatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCancelPayment_NoStateChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No use case expectations: cancellation never touches the ledger.
	mockUC := mocks.NewMockPaymentUseCase(ctrl)
	h := NewPaymentHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/payment/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetActor(c, access.Actor{ID: uuid.New(), Role: access.RoleMember})

	err := h.CancelPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
