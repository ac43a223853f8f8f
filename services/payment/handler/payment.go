package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/middleware"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/internal/utils"
	"github.com/adrnf/langganin/services/payment"
)

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	paymentUC payment.PaymentUseCase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// PreparePayment handles GET /payment/:package
func (h *PaymentHandler) PreparePayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	packageID, err := uuid.Parse(c.Param("package"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid package ID")
	}

	checkout, err := h.paymentUC.PreparePayment(c.Request().Context(), actor, packageID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Checkout prepared", checkout)
}

// InitiatePayment handles POST /payment
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	checkout, err := h.paymentUC.InitiatePayment(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment initiated", checkout)
}

// HandleCallback handles GET /payment/callback. The gateway expects a
// JSON body either way, so an unknown order id is reported in the
// envelope rather than surfaced as a 404.
func (h *PaymentHandler) HandleCallback(c echo.Context) error {
	var notification models.PaymentNotification
	if err := c.Bind(&notification); err != nil {
		return utils.BadRequestResponse(c, "Invalid callback payload")
	}

	txn, err := h.paymentUC.HandleCallback(c.Request().Context(), &notification)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			return utils.ErrorResponseHandler(c, http.StatusOK, "Transaction not found")
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Callback processed", txn)
}

// PaymentSuccess handles GET /payment/success/:transaction
func (h *PaymentHandler) PaymentSuccess(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("transaction"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.paymentUC.GetTransaction(c.Request().Context(), actor, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", txn)
}

// CancelPayment handles DELETE /payment/cancel. Cancellation records
// nothing on the ledger; the pending transaction stays pending until
// the gateway reports its outcome.
func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	if _, ok := middleware.ActorFromContext(c); !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment cancelled", nil)
}

// ListTransactions handles GET /payment/transactions
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	transactions, err := h.paymentUC.ListTransactions(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", transactions)
}
