package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/logger"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/membership"
)

// MembershipUC implements the membership.MembershipUseCase interface
type MembershipUC struct {
	cfg      *models.Config
	repo     membership.MembershipRepo
	packages membership.PackageReader
	gw       membership.MembershipGW
	validate *validator.Validate
	timeNow  func() time.Time
}

// NewMembershipUC creates a new membership use case
func NewMembershipUC(cfg *models.Config, repo membership.MembershipRepo, packages membership.PackageReader, gw membership.MembershipGW) membership.MembershipUseCase {
	return &MembershipUC{
		cfg:      cfg,
		repo:     repo,
		packages: packages,
		gw:       gw,
		validate: validator.New(),
		timeNow:  time.Now,
	}
}

// Grant creates the membership for a paid transaction. A transaction
// that already carries a membership is returned as-is so a replayed
// paid callback never grants twice.
func (uc *MembershipUC) Grant(ctx context.Context, txn *models.Transaction) (*models.Membership, error) {
	if txn.MembershipID != nil {
		return uc.repo.GetMembershipByID(ctx, *txn.MembershipID)
	}

	pkg, err := uc.packages.GetPackageByID(ctx, txn.PackageID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve package for grant: %w", err)
	}

	now := uc.timeNow()
	m := &models.Membership{
		ID:        uuid.New(),
		UserID:    txn.UserID,
		PackageID: pkg.ID,
		StartedAt: now,
		ExpiresAt: now.AddDate(0, pkg.DurationMonths, 0),
		Status:    models.MembershipStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.CreateMembership(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to grant membership: %w", err)
	}

	if err := uc.gw.PublishMembershipGranted(ctx, m); err != nil {
		// The membership row is committed; event delivery is best effort.
		logger.Warn("Failed to publish membership granted event",
			logger.String("membership_id", m.ID.String()),
			logger.Err(err))
	}

	return m, nil
}

// GetMembership retrieves a membership. Members may only read their own
// rows; admins may read any. The returned status reflects expiry as of
// the read.
func (uc *MembershipUC) GetMembership(ctx context.Context, actor access.Actor, id uuid.UUID) (*models.Membership, error) {
	m, err := uc.repo.GetMembershipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccessResource(m.UserID) {
		return nil, fmt.Errorf("get membership: %w", apperrors.ErrForbidden)
	}

	m.Status = m.EffectiveStatus(uc.timeNow())
	return m, nil
}

// UpdateMembership overrides a membership's stored status. Admin only.
func (uc *MembershipUC) UpdateMembership(ctx context.Context, actor access.Actor, id uuid.UUID, req *models.UpdateMembershipRequest) (*models.Membership, error) {
	if !actor.Can(access.ActionMembershipUpdate) {
		return nil, fmt.Errorf("update membership: %w", apperrors.ErrForbidden)
	}

	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	if !models.ValidMembershipStatus(req.Status) {
		return nil, fmt.Errorf("%w: invalid membership status %q", apperrors.ErrValidationFailed, req.Status)
	}

	if err := uc.repo.UpdateMembershipStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	m, err := uc.repo.GetMembershipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Status = m.EffectiveStatus(uc.timeNow())
	return m, nil
}

// DeleteMembership removes a membership. Admin only.
func (uc *MembershipUC) DeleteMembership(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if !actor.Can(access.ActionMembershipDelete) {
		return fmt.Errorf("delete membership: %w", apperrors.ErrForbidden)
	}

	return uc.repo.DeleteMembership(ctx, id)
}

// ListMemberships lists memberships for the actor: admins get every
// row, members get their own history. Statuses reflect expiry as of
// the read.
func (uc *MembershipUC) ListMemberships(ctx context.Context, actor access.Actor) ([]*models.Membership, error) {
	var (
		memberships []*models.Membership
		err         error
	)
	if actor.Can(access.ActionMembershipViewAny) {
		memberships, err = uc.repo.ListMemberships(ctx)
	} else {
		memberships, err = uc.repo.ListMembershipsByUser(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}

	now := uc.timeNow()
	for _, m := range memberships {
		m.Status = m.EffectiveStatus(now)
	}

	return memberships, nil
}
