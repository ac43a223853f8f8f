package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adrnf/langganin/internal/pkg/middleware"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/internal/utils"
	"github.com/adrnf/langganin/services/membership"
)

// MembershipHandler handles HTTP requests for memberships
type MembershipHandler struct {
	membershipUC membership.MembershipUseCase
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipUC membership.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{membershipUC: membershipUC}
}

// ListMemberships handles GET /memberships
func (h *MembershipHandler) ListMemberships(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	memberships, err := h.membershipUC.ListMemberships(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Memberships retrieved", memberships)
}

// GetMembership handles GET /memberships/:id
func (h *MembershipHandler) GetMembership(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid membership ID")
	}

	m, err := h.membershipUC.GetMembership(c.Request().Context(), actor, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Membership retrieved", m)
}

// UpdateMembership handles PUT /memberships/:id
func (h *MembershipHandler) UpdateMembership(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid membership ID")
	}

	var req models.UpdateMembershipRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	m, err := h.membershipUC.UpdateMembership(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Membership updated successfully", m)
}

// DeleteMembership handles DELETE /memberships/:id
func (h *MembershipHandler) DeleteMembership(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid membership ID")
	}

	if err := h.membershipUC.DeleteMembership(c.Request().Context(), actor, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Membership deleted successfully", nil)
}
