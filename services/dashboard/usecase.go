package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adrnf/langganin/services/dashboard DashboardUseCase

// DashboardUseCase defines the interface for the dashboard views
type DashboardUseCase interface {
	AdminDashboard(ctx context.Context) (*models.AdminDashboard, error)
	MemberDashboard(ctx context.Context, userID uuid.UUID) (*models.MemberDashboard, error)
}
