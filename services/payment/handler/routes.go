package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the payment routes. The gateway callback is
// unauthenticated; everything else requires a valid token. Static
// segments are registered before the :package wildcard.
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	e.GET("/payment/callback", h.HandleCallback)

	g := e.Group("/payment")
	g.GET("/transactions", h.ListTransactions, authMiddleware)
	g.GET("/success/:transaction", h.PaymentSuccess, authMiddleware)
	g.DELETE("/cancel", h.CancelPayment, authMiddleware)
	g.POST("", h.InitiatePayment, authMiddleware)
	g.GET("/:package", h.PreparePayment, authMiddleware)
}
