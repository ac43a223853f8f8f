package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the subscription package routes.
// Role gating happens in the use case; every route requires auth.
func (h *PackageHandler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	g := e.Group("/subscription-packages", authMiddleware)

	g.GET("", h.ListPackages)
	g.POST("", h.CreatePackage)
	g.GET("/:id", h.GetPackage)
	g.PUT("/:id", h.UpdatePackage)
	g.DELETE("/:id", h.DeletePackage)
}
