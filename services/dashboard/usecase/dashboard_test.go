package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/database"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/dashboard/mocks"
)

func setupDashboardUCTest(t *testing.T) (*DashboardUC, *mocks.MockDashboardRepo, *mocks.MockActivePackageLister, redismock.ClientMock) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockDashboardRepo(ctrl)
	mockPackages := mocks.NewMockActivePackageLister(ctrl)

	redisDB, redisMock := redismock.NewClientMock()
	cache := database.NewRedisClientFromExisting(redisDB)

	uc := NewDashboardUC(&models.Config{}, mockRepo, mockPackages, cache).(*DashboardUC)

	return uc, mockRepo, mockPackages, redisMock
}

func TestAdminDashboard_StatsCachedPerMonth(t *testing.T) {
	uc, mockRepo, _, redisMock := setupDashboardUCTest(t)

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc.timeNow = func() time.Time { return now }

	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	stats := models.AdminDashboardStats{
		TotalMembers:      42,
		ActiveMemberships: 17,
		TotalPackages:     4,
		MonthlyRevenue:    decimal.NewFromInt(1250000),
	}
	cached, err := json.Marshal(&stats)
	require.NoError(t, err)

	redisMock.ExpectGet("dashboard:admin:stats:2026-08").RedisNil()
	redisMock.ExpectSet("dashboard:admin:stats:2026-08", cached, statsCacheTTL).SetVal("OK")

	mockRepo.EXPECT().CountMembers(gomock.Any()).Return(42, nil)
	mockRepo.EXPECT().CountActiveMemberships(gomock.Any()).Return(17, nil)
	mockRepo.EXPECT().CountPackages(gomock.Any()).Return(4, nil)
	mockRepo.EXPECT().SumPaidAmountBetween(gomock.Any(), monthStart, monthStart.AddDate(0, 1, 0)).
		Return(decimal.NewFromInt(1250000), nil)
	mockRepo.EXPECT().RecentTransactions(gomock.Any(), recentLimit).Return([]*models.Transaction{}, nil)
	mockRepo.EXPECT().RecentMemberships(gomock.Any(), recentLimit).Return([]*models.Membership{}, nil)

	view, err := uc.AdminDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, view.Stats)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestAdminDashboard_CacheHitSkipsCounts(t *testing.T) {
	uc, mockRepo, _, redisMock := setupDashboardUCTest(t)

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc.timeNow = func() time.Time { return now }

	stats := models.AdminDashboardStats{
		TotalMembers:      42,
		ActiveMemberships: 17,
		TotalPackages:     4,
		MonthlyRevenue:    decimal.NewFromInt(1250000),
	}
	cached, err := json.Marshal(&stats)
	require.NoError(t, err)

	redisMock.ExpectGet("dashboard:admin:stats:2026-08").SetVal(string(cached))

	// No count expectations: the cached stats short-circuit the queries.
	mockRepo.EXPECT().RecentTransactions(gomock.Any(), recentLimit).Return([]*models.Transaction{}, nil)
	mockRepo.EXPECT().RecentMemberships(gomock.Any(), recentLimit).Return([]*models.Membership{}, nil)

	view, err := uc.AdminDashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, view.Stats)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestMemberDashboard(t *testing.T) {
	uc, mockRepo, mockPackages, _ := setupDashboardUCTest(t)

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc.timeNow = func() time.Time { return now }

	userID := uuid.New()
	// Latest membership is lapsed: it must still surface, read as expired.
	latest := &models.Membership{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    models.MembershipStatusActive,
		StartedAt: now.AddDate(0, -4, 0),
		ExpiresAt: now.AddDate(0, -1, 0),
	}
	packages := []*models.SubscriptionPackage{{ID: uuid.New(), IsActive: true}}

	mockRepo.EXPECT().LatestMembershipByUser(gomock.Any(), userID).Return(latest, nil)
	mockRepo.EXPECT().RecentMembershipsByUser(gomock.Any(), userID, recentLimit).
		Return([]*models.Membership{latest}, nil)
	mockRepo.EXPECT().RecentTransactionsByUser(gomock.Any(), userID, recentLimit).
		Return([]*models.Transaction{}, nil)
	mockPackages.EXPECT().ListActivePackages(gomock.Any()).Return(packages, nil)

	view, err := uc.MemberDashboard(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, view.CurrentMembership)
	assert.Equal(t, models.MembershipStatusExpired, view.CurrentMembership.Status)
	assert.Equal(t, packages, view.AvailablePackages)
}

func TestMemberDashboard_NoMembershipYet(t *testing.T) {
	uc, mockRepo, mockPackages, _ := setupDashboardUCTest(t)

	userID := uuid.New()

	mockRepo.EXPECT().LatestMembershipByUser(gomock.Any(), userID).
		Return(nil, apperrors.ErrMembershipNotFound)
	mockRepo.EXPECT().RecentMembershipsByUser(gomock.Any(), userID, recentLimit).
		Return([]*models.Membership{}, nil)
	mockRepo.EXPECT().RecentTransactionsByUser(gomock.Any(), userID, recentLimit).
		Return([]*models.Transaction{}, nil)
	mockPackages.EXPECT().ListActivePackages(gomock.Any()).Return([]*models.SubscriptionPackage{}, nil)

	view, err := uc.MemberDashboard(context.Background(), userID)

	require.NoError(t, err)
	assert.Nil(t, view.CurrentMembership)
}
