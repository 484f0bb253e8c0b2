package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, daysRemaining(now.Add(-time.Hour), now))
	assert.Equal(t, 1, daysRemaining(now.Add(time.Hour), now))
	assert.Equal(t, 3, daysRemaining(now.AddDate(0, 0, 3), now))
	assert.Equal(t, 4, daysRemaining(now.AddDate(0, 0, 3).Add(time.Hour), now))
}

func TestAggregatePackageStats(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	paidAt := now.Add(-time.Hour)

	standard := models.ServicePackage{ID: 2, Name: "Standard", Tier: models.TierPriority}
	premium := models.ServicePackage{ID: 3, Name: "Premium", Tier: models.TierExpress}

	activeID := uuid.New()
	expiredID := uuid.New()
	pendingID := uuid.New()

	subs := []models.PostSubscription{
		{
			ID:        activeID,
			Action:    models.ActionUpgrade,
			Status:    models.SubscriptionActive,
			StartDate: now.AddDate(0, 0, -10),
			EndDate:   now.AddDate(0, 0, 50),
			Package:   premium,
			Post:      models.Post{Title: "Lost passport"},
		},
		{
			ID:        expiredID,
			Action:    models.ActionNew,
			Status:    models.SubscriptionExpired,
			StartDate: now.AddDate(0, 0, -60),
			EndDate:   now.AddDate(0, 0, -30),
			Package:   standard,
			Post:      models.Post{Title: "Lost passport"},
		},
		{
			ID:      pendingID,
			Action:  models.ActionNew,
			Status:  models.SubscriptionPending,
			EndDate: now.AddDate(0, 0, 30),
			Package: standard,
			Post:    models.Post{Title: "Lost cat"},
		},
	}

	payments := map[uuid.UUID]models.Payment{
		activeID:  {Amount: 99000, Status: models.PaymentPaid, PaidAt: &paidAt},
		expiredID: {Amount: 49000, Status: models.PaymentPaid, PaidAt: &paidAt},
		pendingID: {Amount: 49000, Status: models.PaymentPending},
	}

	stats := aggregatePackageStats(subs, payments, now)

	assert.Equal(t, 3, stats.TotalSubscriptions)
	assert.Equal(t, 1, stats.ActiveSubscriptions)
	assert.Equal(t, 1, stats.ExpiredSubscriptions)
	assert.Equal(t, 0, stats.CancelledSubscriptions)

	// Pending payments do not count as spend.
	assert.Equal(t, int64(148000), stats.TotalSpent)

	assert.Equal(t, 2, stats.PackagesByTier[models.TierPriority])
	assert.Equal(t, 1, stats.PackagesByTier[models.TierExpress])
	assert.Equal(t, 2, stats.ActionStats[models.ActionNew])
	assert.Equal(t, 1, stats.ActionStats[models.ActionUpgrade])

	require.Len(t, stats.ActivePackages, 1)
	active := stats.ActivePackages[0]
	assert.Equal(t, activeID, active.SubscriptionID)
	assert.Equal(t, "Premium", active.PackageName)
	assert.Equal(t, 50, active.DaysRemaining)
	assert.Equal(t, models.PaymentPaid, active.PaymentStatus)

	require.Len(t, stats.RecentActivity, 3)
	assert.Equal(t, activeID, stats.RecentActivity[0].SubscriptionID)
}

func TestAggregatePackageStatsCapsRecentActivity(t *testing.T) {
	now := time.Now().UTC()

	subs := make([]models.PostSubscription, 14)
	for i := range subs {
		subs[i] = models.PostSubscription{
			ID:      uuid.New(),
			Action:  models.ActionNew,
			Status:  models.SubscriptionExpired,
			EndDate: now.AddDate(0, 0, -1),
			Package: models.ServicePackage{Tier: models.TierFree},
		}
	}

	stats := aggregatePackageStats(subs, nil, now)

	assert.Equal(t, 14, stats.TotalSubscriptions)
	assert.Len(t, stats.RecentActivity, recentActivityLimit)
}

func TestAggregateBoostStats(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	paidAt := now.Add(-time.Hour)

	activeID := uuid.New()
	doneID := uuid.New()
	longID := uuid.New()

	boosts := []models.BoostTransaction{
		{
			ID:           activeID,
			DurationDays: 5,
			Price:        50000,
			StartDate:    now.AddDate(0, 0, -2),
			EndDate:      now.AddDate(0, 0, 3),
			IsActive:     true,
			Post:         models.Post{Title: "Lost dog"},
		},
		{
			ID:           doneID,
			DurationDays: 10,
			Price:        90000,
			StartDate:    now.AddDate(0, 0, -20),
			EndDate:      now.AddDate(0, 0, -10),
			IsActive:     false,
			Post:         models.Post{Title: "Lost dog"},
		},
		{
			ID:           longID,
			DurationDays: 35,
			Price:        252000,
			StartDate:    now.AddDate(0, 0, -40),
			EndDate:      now.AddDate(0, 0, -5),
			IsActive:     false,
			Post:         models.Post{Title: "Lost bike"},
		},
	}

	payments := map[uuid.UUID]models.Payment{
		activeID: {Amount: 50000, Status: models.PaymentPending},
		doneID:   {Amount: 90000, Status: models.PaymentPaid, PaidAt: &paidAt},
		longID:   {Amount: 252000, Status: models.PaymentPaid, PaidAt: &paidAt},
	}

	stats := aggregateBoostStats(boosts, payments, now)

	assert.Equal(t, 3, stats.TotalBoosts)
	assert.Equal(t, 1, stats.ActiveBoosts)
	assert.Equal(t, 2, stats.CompletedBoosts)
	assert.Equal(t, int64(342000), stats.TotalSpent)

	assert.Equal(t, 1, stats.DurationStats.LessThan7Days)
	assert.Equal(t, 1, stats.DurationStats.From7To30Days)
	assert.Equal(t, 1, stats.DurationStats.MoreThan30Days)

	require.Len(t, stats.RecentActivity, 3)
	assert.Equal(t, activeID, stats.RecentActivity[0].BoostID)
	assert.Equal(t, models.PaymentPending, stats.RecentActivity[0].PaymentStatus)
}
