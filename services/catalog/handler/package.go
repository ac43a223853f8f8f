package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adrnf/langganin/internal/pkg/middleware"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/internal/utils"
	"github.com/adrnf/langganin/services/catalog"
)

// PackageHandler handles HTTP requests for the subscription package catalog
type PackageHandler struct {
	packageUC catalog.PackageUseCase
}

// NewPackageHandler creates a new catalog handler
func NewPackageHandler(packageUC catalog.PackageUseCase) *PackageHandler {
	return &PackageHandler{packageUC: packageUC}
}

// ListPackages handles GET /subscription-packages
func (h *PackageHandler) ListPackages(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	packages, err := h.packageUC.ListPackages(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription packages retrieved", packages)
}

// GetPackage handles GET /subscription-packages/:id
func (h *PackageHandler) GetPackage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid package ID")
	}

	pkg, err := h.packageUC.GetPackage(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription package retrieved", pkg)
}

// CreatePackage handles POST /subscription-packages
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	pkg, err := h.packageUC.CreatePackage(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Subscription package created successfully", pkg)
}

// UpdatePackage handles PUT /subscription-packages/:id
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid package ID")
	}

	var req models.UpdatePackageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	pkg, err := h.packageUC.UpdatePackage(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription package updated successfully", pkg)
}

// DeletePackage handles DELETE /subscription-packages/:id
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid package ID")
	}

	if err := h.packageUC.DeletePackage(c.Request().Context(), actor, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription package deleted successfully", nil)
}
