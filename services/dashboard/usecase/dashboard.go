package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adrnf/langganin/internal/pkg/apperrors"
	"github.com/adrnf/langganin/internal/pkg/database"
	"github.com/adrnf/langganin/internal/pkg/logger"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/services/dashboard"
)

const (
	recentLimit   = 5
	statsCacheTTL = 30 * time.Second
)

// DashboardUC implements the dashboard.DashboardUseCase interface
type DashboardUC struct {
	cfg      *models.Config
	repo     dashboard.DashboardRepo
	packages dashboard.ActivePackageLister
	cache    *database.RedisClient
	timeNow  func() time.Time
}

// NewDashboardUC creates a new dashboard use case
func NewDashboardUC(cfg *models.Config, repo dashboard.DashboardRepo, packages dashboard.ActivePackageLister, cache *database.RedisClient) dashboard.DashboardUseCase {
	return &DashboardUC{
		cfg:      cfg,
		repo:     repo,
		packages: packages,
		cache:    cache,
		timeNow:  time.Now,
	}
}

// AdminDashboard builds the admin reporting view. The aggregate stats
// are cached briefly in Redis, keyed per calendar month so the revenue
// window rolls over cleanly; the recent activity lists are always read
// fresh.
func (uc *DashboardUC) AdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	now := uc.timeNow()

	stats, err := uc.adminStats(ctx, now)
	if err != nil {
		return nil, err
	}

	recentTxns, err := uc.repo.RecentTransactions(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	recentMemberships, err := uc.repo.RecentMemberships(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	for _, m := range recentMemberships {
		m.Status = m.EffectiveStatus(now)
	}

	return &models.AdminDashboard{
		Stats:              *stats,
		RecentTransactions: recentTxns,
		RecentMemberships:  recentMemberships,
	}, nil
}

func (uc *DashboardUC) adminStats(ctx context.Context, now time.Time) (*models.AdminDashboardStats, error) {
	cacheKey := fmt.Sprintf("dashboard:admin:stats:%s", now.Format("2006-01"))

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
			stats := &models.AdminDashboardStats{}
			if err := json.Unmarshal([]byte(cached), stats); err == nil {
				return stats, nil
			}
		}
	}

	members, err := uc.repo.CountMembers(ctx)
	if err != nil {
		return nil, err
	}

	activeMemberships, err := uc.repo.CountActiveMemberships(ctx)
	if err != nil {
		return nil, err
	}

	packages, err := uc.repo.CountPackages(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenue, err := uc.repo.SumPaidAmountBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	stats := &models.AdminDashboardStats{
		TotalMembers:      members,
		ActiveMemberships: activeMemberships,
		TotalPackages:     packages,
		MonthlyRevenue:    revenue,
	}

	if uc.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, data, statsCacheTTL); err != nil {
				logger.Debug("Failed to cache dashboard stats", logger.Err(err))
			}
		}
	}

	return stats, nil
}

// MemberDashboard builds the member view: the latest membership by
// start time regardless of validity, recent membership and transaction
// history, and the active catalog. Statuses reflect expiry as of the
// read.
func (uc *DashboardUC) MemberDashboard(ctx context.Context, userID uuid.UUID) (*models.MemberDashboard, error) {
	now := uc.timeNow()

	current, err := uc.repo.LatestMembershipByUser(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrMembershipNotFound) {
		return nil, err
	}
	if current != nil {
		current.Status = current.EffectiveStatus(now)
	}

	history, err := uc.repo.RecentMembershipsByUser(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}
	for _, m := range history {
		m.Status = m.EffectiveStatus(now)
	}

	transactions, err := uc.repo.RecentTransactionsByUser(ctx, userID, recentLimit)
	if err != nil {
		return nil, err
	}

	packages, err := uc.packages.ListActivePackages(ctx)
	if err != nil {
		return nil, err
	}

	return &models.MemberDashboard{
		CurrentMembership:  current,
		MembershipHistory:  history,
		TransactionHistory: transactions,
		AvailablePackages:  packages,
	}, nil
}
