package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/identity"
	"github.com/lostfound-vn/backend/internal/metrics"
	"github.com/lostfound-vn/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BoostService sells time-boxed top-ranking placements. Boosts are layered
// on top of any subscription tier and only the post owner may buy one;
// admins get no override here, unlike subscription purchases.
type BoostService struct {
	db       *gorm.DB
	locker   *Locker
	baseRate int64
}

func NewBoostService(db *gorm.DB, locker *Locker, baseRate int64) *BoostService {
	return &BoostService{db: db, locker: locker, baseRate: baseRate}
}

type BoostPurchase struct {
	Boost   *models.BoostTransaction
	Payment *models.Payment
}

// BoostPrice computes the boost price for a duration: base rate per day,
// with a 10% discount from 7 days and a further 20% from 30 days. The
// discounts compound: 35 days costs base*35*0.9*0.8.
func BoostPrice(baseRate int64, durationDays int) int64 {
	price := float64(baseRate) * float64(durationDays)
	if durationDays >= 7 {
		price *= 0.9
	}
	if durationDays >= 30 {
		price *= 0.8
	}
	return int64(price)
}

func (s *BoostService) Price(durationDays int) int64 {
	return BoostPrice(s.baseRate, durationDays)
}

func (s *BoostService) Purchase(ctx context.Context, postID uuid.UUID, principal identity.Principal, durationDays int, priceOverride *int64) (*BoostPurchase, error) {
	if durationDays < 1 {
		return nil, ErrInvalidAction
	}

	price := s.Price(durationDays)
	if priceOverride != nil && *priceOverride > 0 {
		price = *priceOverride
	}

	var result *BoostPurchase
	err := s.locker.WithPostLock(ctx, postID, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var post models.Post
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&post, "id = ?", postID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrPostNotFound
				}
				return err
			}

			// Owner only. Admins purchase boosts like any owner would.
			if post.UserID != principal.UserID {
				return ErrForbidden
			}

			now := time.Now().UTC()
			endDate := now.AddDate(0, 0, durationDays)

			boost := models.BoostTransaction{
				PostID:       post.ID,
				UserID:       principal.UserID,
				Price:        price,
				DurationDays: durationDays,
				StartDate:    now,
				EndDate:      endDate,
				IsActive:     true,
			}
			if err := tx.Create(&boost).Error; err != nil {
				return err
			}

			payment := models.Payment{
				UserID:      principal.UserID,
				Amount:      price,
				PaymentType: models.PaymentTypeBoost,
				Status:      models.PaymentPending,
				TargetType:  models.TargetBoost,
				TargetID:    boost.ID,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}

			// Visibility activates before the payment is confirmed. The
			// placement favors availability over strict payment gating.
			if err := tx.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
				"is_boosted":      true,
				"boost_until":     endDate,
				"last_boosted_at": now,
			}).Error; err != nil {
				return err
			}

			result = &BoostPurchase{Boost: &boost, Payment: &payment}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.BoostPurchases.Inc()
	slog.Info("boost purchased",
		"post_id", postID,
		"duration_days", durationDays,
		"price", price,
	)
	return result, nil
}
