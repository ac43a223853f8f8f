package membership

import (
	"context"

	"github.com/adrnf/langganin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/adrnf/langganin/services/membership MembershipGW

// MembershipGW defines the interface for publishing membership events
type MembershipGW interface {
	PublishMembershipGranted(ctx context.Context, m *models.Membership) error
}
