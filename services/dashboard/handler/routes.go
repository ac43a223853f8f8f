package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	e.GET("/dashboard", h.GetDashboard, authMiddleware)
}
