package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/lostfound-vn/backend/internal/metrics"
	"github.com/lostfound-vn/backend/internal/models"
	"github.com/lostfound-vn/backend/internal/notify"
	"gorm.io/gorm"
)

const (
	sweepSubscriptions = "subscriptions"
	sweepBoosts        = "boosts"

	sweepLockExpiry = 10 * time.Minute

	// Subscriptions ending within this window trigger an expiry-imminent
	// notification during the daily sweep.
	expiryNoticeWindow = 3 * 24 * time.Hour
)

// ReconcilerService demotes expired subscriptions and boosts. Both sweeps
// are idempotent bulk updates: re-running over already-expired rows touches
// nothing, so partial progress is corrected by the next run.
type ReconcilerService struct {
	db       *gorm.DB
	locker   *Locker
	notifier notify.Notifier
}

func NewReconcilerService(db *gorm.DB, locker *Locker, notifier notify.Notifier) *ReconcilerService {
	return &ReconcilerService{db: db, locker: locker, notifier: notifier}
}

// SweepSubscriptions transitions ACTIVE subscriptions past their end date to
// EXPIRED. Post status is untouched: an expired package does not revert
// approval.
func (s *ReconcilerService) SweepSubscriptions(ctx context.Context) {
	unlock, ok := s.locker.TrySweepLock(ctx, sweepSubscriptions, sweepLockExpiry)
	if !ok {
		slog.Info("subscription sweep skipped, lock busy")
		return
	}
	defer unlock()

	now := time.Now().UTC()

	result := s.db.WithContext(ctx).Model(&models.PostSubscription{}).
		Where("status = ? AND end_date < ?", models.SubscriptionActive, now).
		Update("status", models.SubscriptionExpired)
	if result.Error != nil {
		metrics.SweepFailures.WithLabelValues(sweepSubscriptions).Inc()
		slog.Error("subscription sweep failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		metrics.SubscriptionsExpired.Add(float64(result.RowsAffected))
		slog.Info("expired subscriptions updated", "count", result.RowsAffected)
	} else {
		slog.Info("no expired subscriptions found")
	}

	s.notifyExpiryImminent(ctx, now)
}

// SweepBoosts clears the cached boost flag on posts whose boost window
// passed, and deactivates the underlying boost rows past their end date.
// The two updates cover overlapping but distinct key sets (posts vs.
// transactions); both run even when one matches nothing.
func (s *ReconcilerService) SweepBoosts(ctx context.Context) {
	unlock, ok := s.locker.TrySweepLock(ctx, sweepBoosts, sweepLockExpiry)
	if !ok {
		slog.Info("boost sweep skipped, lock busy")
		return
	}
	defer unlock()

	now := time.Now().UTC()

	posts := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("is_boosted = ? AND boost_until < ?", true, now).
		Updates(map[string]interface{}{
			"is_boosted":  false,
			"boost_until": nil,
		})
	if posts.Error != nil {
		metrics.SweepFailures.WithLabelValues(sweepBoosts).Inc()
		slog.Error("boost flag sweep failed", "error", posts.Error)
	} else if posts.RowsAffected > 0 {
		metrics.BoostsExpired.Add(float64(posts.RowsAffected))
		slog.Info("expired boost flags cleared", "count", posts.RowsAffected)
	}

	// Independent of the flag update: a failure above must not block this.
	boosts := s.db.WithContext(ctx).Model(&models.BoostTransaction{}).
		Where("is_active = ? AND end_date < ?", true, now).
		Update("is_active", false)
	if boosts.Error != nil {
		metrics.SweepFailures.WithLabelValues(sweepBoosts).Inc()
		slog.Error("boost transaction sweep failed", "error", boosts.Error)
	} else if boosts.RowsAffected > 0 {
		slog.Info("expired boost transactions deactivated", "count", boosts.RowsAffected)
	}
}

func (s *ReconcilerService) notifyExpiryImminent(ctx context.Context, now time.Time) {
	var expiring []models.PostSubscription
	err := s.db.WithContext(ctx).
		Where("status = ? AND end_date BETWEEN ? AND ?",
			models.SubscriptionActive, now, now.Add(expiryNoticeWindow)).
		Find(&expiring).Error
	if err != nil {
		slog.Error("expiry notice query failed", "error", err)
		return
	}

	for _, sub := range expiring {
		if nerr := s.notifier.Notify(ctx, notify.EventExpiryImminent, sub.UserID, sub.PostID); nerr != nil {
			slog.Error("expiry notice failed", "subscription_id", sub.ID, "error", nerr)
		}
	}
}
