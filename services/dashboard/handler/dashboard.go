package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adrnf/langganin/internal/pkg/middleware"
	"github.com/adrnf/langganin/internal/utils"
	"github.com/adrnf/langganin/services/dashboard"
)

// DashboardHandler handles HTTP requests for the dashboard
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUseCase
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetDashboard handles GET /dashboard, dispatching on the actor's role
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if actor.IsAdmin() {
		view, err := h.dashboardUC.AdminDashboard(c.Request().Context())
		if err != nil {
			return utils.DomainErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Admin dashboard retrieved", view)
	}

	view, err := h.dashboardUC.MemberDashboard(c.Request().Context(), actor.ID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved", view)
}
