package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/middleware"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/dashboard/mocks"
)

func newDashboardContext(t *testing.T, actor *access.Actor) (*mocks.MockDashboardUseCase, echo.Context, *httptest.ResponseRecorder) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockDashboardUseCase(ctrl)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		middleware.SetActor(c, *actor)
	}

	return mockUC, c, rec
}

func TestGetDashboard_AdminView(t *testing.T) {
	actor := access.Actor{ID: uuid.New(), Role: access.RoleAdmin}
	mockUC, c, rec := newDashboardContext(t, &actor)
	h := NewDashboardHandler(mockUC)

	mockUC.EXPECT().AdminDashboard(gomock.Any()).Return(&models.AdminDashboard{}, nil)

	err := h.GetDashboard(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDashboard_MemberView(t *testing.T) {
	actor := access.Actor{ID: uuid.New(), Role: access.RoleMember}
	mockUC, c, rec := newDashboardContext(t, &actor)
	h := NewDashboardHandler(mockUC)

	mockUC.EXPECT().MemberDashboard(gomock.Any(), actor.ID).Return(&models.MemberDashboard{}, nil)

	err := h.GetDashboard(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDashboard_MissingActor(t *testing.T) {
	mockUC, c, rec := newDashboardContext(t, nil)
	h := NewDashboardHandler(mockUC)

	err := h.GetDashboard(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
