package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adrnf/langganin/internal/pkg/constants"
	"github.com/adrnf/langganin/internal/pkg/models"
	natspkg "github.com/adrnf/langganin/internal/pkg/nats"
	"github.com/adrnf/langganin/services/membership"
)

// MembershipGW implements the membership.MembershipGW interface
type MembershipGW struct {
	natsClient *natspkg.Client
}

// NewMembershipGW creates a new membership gateway
func NewMembershipGW(natsClient *natspkg.Client) membership.MembershipGW {
	return &MembershipGW{natsClient: natsClient}
}

// PublishMembershipGranted publishes a granted membership to NATS
func (g *MembershipGW) PublishMembershipGranted(_ context.Context, m *models.Membership) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal membership: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectMembershipGranted, data)
}
