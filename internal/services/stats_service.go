package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/models"
	"gorm.io/gorm"
)

const recentActivityLimit = 10

// StatsService aggregates a user's subscription and boost history into the
// account dashboard views.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) UserPackageStats(ctx context.Context, userID uuid.UUID) (*dto.UserPackageStats, error) {
	var subs []models.PostSubscription
	err := s.db.WithContext(ctx).
		Preload("Package").
		Preload("Post").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentsByTarget(ctx, models.TargetSubscription, subscriptionIDs(subs))
	if err != nil {
		return nil, err
	}

	return aggregatePackageStats(subs, payments, time.Now().UTC()), nil
}

func (s *StatsService) UserBoostStats(ctx context.Context, userID uuid.UUID) (*dto.UserBoostStats, error) {
	var boosts []models.BoostTransaction
	err := s.db.WithContext(ctx).
		Preload("Post").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&boosts).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(boosts))
	for i := range boosts {
		ids[i] = boosts[i].ID
	}
	payments, err := s.paymentsByTarget(ctx, models.TargetBoost, ids)
	if err != nil {
		return nil, err
	}

	return aggregateBoostStats(boosts, payments, time.Now().UTC()), nil
}

func (s *StatsService) paymentsByTarget(ctx context.Context, targetType models.PaymentTargetType, targetIDs []uuid.UUID) (map[uuid.UUID]models.Payment, error) {
	byTarget := make(map[uuid.UUID]models.Payment, len(targetIDs))
	if len(targetIDs) == 0 {
		return byTarget, nil
	}

	var payments []models.Payment
	err := s.db.WithContext(ctx).
		Where("target_type = ? AND target_id IN ?", targetType, targetIDs).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		byTarget[p.TargetID] = p
	}
	return byTarget, nil
}

func subscriptionIDs(subs []models.PostSubscription) []uuid.UUID {
	ids := make([]uuid.UUID, len(subs))
	for i := range subs {
		ids[i] = subs[i].ID
	}
	return ids
}

func aggregatePackageStats(subs []models.PostSubscription, payments map[uuid.UUID]models.Payment, now time.Time) *dto.UserPackageStats {
	stats := &dto.UserPackageStats{
		TotalSubscriptions: len(subs),
		PackagesByTier:     make(map[models.PackageTier]int),
		ActionStats:        make(map[models.SubscriptionAction]int),
		ActivePackages:     []dto.ActivePackage{},
		RecentActivity:     []dto.SubscriptionActivity{},
	}

	for _, sub := range subs {
		payment, hasPayment := payments[sub.ID]

		switch sub.Status {
		case models.SubscriptionActive:
			stats.ActiveSubscriptions++
		case models.SubscriptionExpired:
			stats.ExpiredSubscriptions++
		case models.SubscriptionCancelled:
			stats.CancelledSubscriptions++
		}

		stats.PackagesByTier[sub.Package.Tier]++
		stats.ActionStats[sub.Action]++

		if hasPayment && payment.IsPaid() {
			stats.TotalSpent += payment.Amount
		}

		if sub.Status == models.SubscriptionActive {
			stats.ActivePackages = append(stats.ActivePackages, dto.ActivePackage{
				SubscriptionID: sub.ID,
				PackageName:    sub.Package.Name,
				PackageTier:    sub.Package.Tier,
				PostID:         sub.PostID,
				PostTitle:      sub.Post.Title,
				StartDate:      sub.StartDate,
				EndDate:        sub.EndDate,
				DaysRemaining:  daysRemaining(sub.EndDate, now),
				PaymentStatus:  payment.Status,
			})
		}

		if len(stats.RecentActivity) < recentActivityLimit {
			stats.RecentActivity = append(stats.RecentActivity, dto.SubscriptionActivity{
				SubscriptionID: sub.ID,
				PackageName:    sub.Package.Name,
				PackageTier:    sub.Package.Tier,
				PostID:         sub.PostID,
				PostTitle:      sub.Post.Title,
				Action:         sub.Action,
				Status:         sub.Status,
				PaymentStatus:  payment.Status,
				CreatedAt:      sub.CreatedAt,
			})
		}
	}

	return stats
}

func aggregateBoostStats(boosts []models.BoostTransaction, payments map[uuid.UUID]models.Payment, now time.Time) *dto.UserBoostStats {
	stats := &dto.UserBoostStats{
		TotalBoosts:    len(boosts),
		RecentActivity: []dto.BoostActivity{},
	}

	for _, boost := range boosts {
		payment, hasPayment := payments[boost.ID]

		if boost.IsActive {
			stats.ActiveBoosts++
		} else if now.After(boost.EndDate) {
			stats.CompletedBoosts++
		}

		if hasPayment && payment.IsPaid() {
			stats.TotalSpent += payment.Amount
		}

		switch {
		case boost.DurationDays < 7:
			stats.DurationStats.LessThan7Days++
		case boost.DurationDays < 30:
			stats.DurationStats.From7To30Days++
		default:
			stats.DurationStats.MoreThan30Days++
		}

		if len(stats.RecentActivity) < recentActivityLimit {
			stats.RecentActivity = append(stats.RecentActivity, dto.BoostActivity{
				BoostID:       boost.ID,
				PostID:        boost.PostID,
				PostTitle:     boost.Post.Title,
				StartDate:     boost.StartDate,
				EndDate:       boost.EndDate,
				DurationDays:  boost.DurationDays,
				Price:         boost.Price,
				IsActive:      boost.IsActive,
				PaymentStatus: payment.Status,
				CreatedAt:     boost.CreatedAt,
			})
		}
	}

	return stats
}

func daysRemaining(endDate, now time.Time) int {
	if endDate.Before(now) {
		return 0
	}
	return int(math.Ceil(endDate.Sub(now).Hours() / 24))
}
