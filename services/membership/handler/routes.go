package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the membership routes.
// Role and ownership gating happens in the use case.
func (h *MembershipHandler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/memberships", authMiddleware)

	g.GET("", h.ListMemberships)
	g.GET("/:id", h.GetMembership)
	g.PUT("/:id", h.UpdateMembership)
	g.DELETE("/:id", h.DeleteMembership)
}
