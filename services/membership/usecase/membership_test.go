package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrnf/langganin/internal/pkg/access"
	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/membership/mocks"
)

func setupMembershipUCTest(t *testing.T) (*MembershipUC, *mocks.MockMembershipRepo, *mocks.MockPackageReader, *mocks.MockMembershipGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockMembershipRepo(ctrl)
	mockPackages := mocks.NewMockPackageReader(ctrl)
	mockGW := mocks.NewMockMembershipGW(ctrl)

	uc := NewMembershipUC(&models.Config{}, mockRepo, mockPackages, mockGW).(*MembershipUC)

	return uc, mockRepo, mockPackages, mockGW
}

func TestGrant_ExpiryIsCalendarMonths(t *testing.T) {
	uc, mockRepo, mockPackages, mockGW := setupMembershipUCTest(t)

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc.timeNow = func() time.Time { return now }

	pkg := &models.SubscriptionPackage{ID: uuid.New(), DurationMonths: 3, IsActive: true}
	txn := &models.Transaction{ID: uuid.New(), UserID: uuid.New(), PackageID: pkg.ID}

	var created *models.Membership
	mockPackages.EXPECT().GetPackageByID(gomock.Any(), pkg.ID).Return(pkg, nil)
	mockRepo.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Membership) error {
			created = m
			return nil
		})
	mockGW.EXPECT().PublishMembershipGranted(gomock.Any(), gomock.Any()).Return(nil)

	m, err := uc.Grant(context.Background(), txn)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, m)
	assert.Equal(t, txn.UserID, m.UserID)
	assert.Equal(t, pkg.ID, m.PackageID)
	assert.Equal(t, models.MembershipStatusActive, m.Status)
	assert.Equal(t, now, m.StartedAt)
	assert.Equal(t, now.AddDate(0, 3, 0), m.ExpiresAt)
}

func TestGrant_TransactionAlreadyGranted(t *testing.T) {
	uc, mockRepo, _, _ := setupMembershipUCTest(t)

	membershipID := uuid.New()
	existing := &models.Membership{ID: membershipID, Status: models.MembershipStatusActive}
	txn := &models.Transaction{ID: uuid.New(), MembershipID: &membershipID}

	// No package lookup, no create, no event: the grant is a no-op.
	mockRepo.EXPECT().GetMembershipByID(gomock.Any(), membershipID).Return(existing, nil)

	m, err := uc.Grant(context.Background(), txn)

	require.NoError(t, err)
	assert.Equal(t, existing, m)
}

func TestGetMembership_OwnershipGate(t *testing.T) {
	ownerID := uuid.New()
	membershipID := uuid.New()

	testCases := []struct {
		name      string
		actor     access.Actor
		expectErr error
	}{
		{name: "owner reads own membership", actor: access.Actor{ID: ownerID, Role: access.RoleMember}},
		{name: "admin reads any membership", actor: access.Actor{ID: uuid.New(), Role: access.RoleAdmin}},
		{name: "stranger is forbidden", actor: access.Actor{ID: uuid.New(), Role: access.RoleMember}, expectErr: apperrors.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, mockRepo, _, _ := setupMembershipUCTest(t)
			stored := &models.Membership{
				ID:        membershipID,
				UserID:    ownerID,
				Status:    models.MembershipStatusActive,
				ExpiresAt: time.Now().Add(24 * time.Hour),
			}
			mockRepo.EXPECT().GetMembershipByID(gomock.Any(), membershipID).Return(stored, nil)

			m, err := uc.GetMembership(context.Background(), tc.actor, membershipID)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.MembershipStatusActive, m.Status)
		})
	}
}

func TestGetMembership_ExpiryAppliedOnRead(t *testing.T) {
	uc, mockRepo, _, _ := setupMembershipUCTest(t)

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc.timeNow = func() time.Time { return now }

	ownerID := uuid.New()
	stored := &models.Membership{
		ID:        uuid.New(),
		UserID:    ownerID,
		Status:    models.MembershipStatusActive,
		ExpiresAt: now.Add(-time.Hour),
	}
	mockRepo.EXPECT().GetMembershipByID(gomock.Any(), stored.ID).Return(stored, nil)

	m, err := uc.GetMembership(context.Background(), access.Actor{ID: ownerID, Role: access.RoleMember}, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, models.MembershipStatusExpired, m.Status)
}

func TestUpdateMembership_AdminOnly(t *testing.T) {
	uc, _, _, _ := setupMembershipUCTest(t)

	_, err := uc.UpdateMembership(context.Background(),
		access.Actor{ID: uuid.New(), Role: access.RoleMember},
		uuid.New(),
		&models.UpdateMembershipRequest{Status: models.MembershipStatusCancelled})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateMembership_RejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := setupMembershipUCTest(t)

	_, err := uc.UpdateMembership(context.Background(),
		access.Actor{ID: uuid.New(), Role: access.RoleAdmin},
		uuid.New(),
		&models.UpdateMembershipRequest{Status: "paused"})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateMembership_Success(t *testing.T) {
	uc, mockRepo, _, _ := setupMembershipUCTest(t)

	id := uuid.New()
	updated := &models.Membership{
		ID:        id,
		Status:    models.MembershipStatusCancelled,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	mockRepo.EXPECT().UpdateMembershipStatus(gomock.Any(), id, models.MembershipStatusCancelled).Return(nil)
	mockRepo.EXPECT().GetMembershipByID(gomock.Any(), id).Return(updated, nil)

	m, err := uc.UpdateMembership(context.Background(),
		access.Actor{ID: uuid.New(), Role: access.RoleAdmin},
		id,
		&models.UpdateMembershipRequest{Status: models.MembershipStatusCancelled})

	require.NoError(t, err)
	assert.Equal(t, models.MembershipStatusCancelled, m.Status)
}

func TestDeleteMembership_AdminOnly(t *testing.T) {
	uc, mockRepo, _, _ := setupMembershipUCTest(t)

	id := uuid.New()
	err := uc.DeleteMembership(context.Background(), access.Actor{ID: uuid.New(), Role: access.RoleMember}, id)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	mockRepo.EXPECT().DeleteMembership(gomock.Any(), id).Return(nil)
	err = uc.DeleteMembership(context.Background(), access.Actor{ID: uuid.New(), Role: access.RoleAdmin}, id)
	assert.NoError(t, err)
}

func TestListMemberships_RoleScoped(t *testing.T) {
	t.Run("admin lists every row", func(t *testing.T) {
		uc, mockRepo, _, _ := setupMembershipUCTest(t)
		all := []*models.Membership{
			{ID: uuid.New(), Status: models.MembershipStatusActive, ExpiresAt: time.Now().Add(time.Hour)},
		}
		mockRepo.EXPECT().ListMemberships(gomock.Any()).Return(all, nil)

		got, err := uc.ListMemberships(context.Background(), access.Actor{ID: uuid.New(), Role: access.RoleAdmin})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("member lists own history with expiry applied", func(t *testing.T) {
		uc, mockRepo, _, _ := setupMembershipUCTest(t)
		actor := access.Actor{ID: uuid.New(), Role: access.RoleMember}
		own := []*models.Membership{
			{ID: uuid.New(), UserID: actor.ID, Status: models.MembershipStatusActive, ExpiresAt: time.Now().Add(-time.Hour)},
		}
		mockRepo.EXPECT().ListMembershipsByUser(gomock.Any(), actor.ID).Return(own, nil)

		got, err := uc.ListMemberships(context.Background(), actor)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.MembershipStatusExpired, got[0].Status)
	})
}
