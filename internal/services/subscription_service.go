package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/identity"
	"github.com/lostfound-vn/backend/internal/metrics"
	"github.com/lostfound-vn/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionService is the purchase path for visibility packages. Every
// purchase writes the subscription and its payment in one transaction, with
// the post row locked for the duration; a per-post redis mutex serializes
// concurrent purchases on the same post across instances.
type SubscriptionService struct {
	db     *gorm.DB
	locker *Locker
}

func NewSubscriptionService(db *gorm.DB, locker *Locker) *SubscriptionService {
	return &SubscriptionService{db: db, locker: locker}
}

type PurchaseInput struct {
	PackageID     uint
	Action        models.SubscriptionAction
	ProofImageURL string
}

type SubscriptionPurchase struct {
	Subscription *models.PostSubscription
	Payment      *models.Payment
	PostStatus   models.PostStatus
}

func (s *SubscriptionService) Purchase(ctx context.Context, postID uuid.UUID, principal identity.Principal, in PurchaseInput) (*SubscriptionPurchase, error) {
	switch in.Action {
	case models.ActionNew, models.ActionUpgrade, models.ActionRenew:
	default:
		return nil, fmt.Errorf("%w: unknown subscription action %q", ErrInvalidAction, in.Action)
	}
	if in.PackageID < 1 {
		return nil, ErrInvalidPackage
	}

	var result *SubscriptionPurchase
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

			if post.UserID != principal.UserID && !principal.IsAdmin() {
				return ErrForbidden
			}

			var err error
			result, err = s.purchaseTx(tx, &post, principal, in)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.SubscriptionPurchases.WithLabelValues(string(in.Action)).Inc()
	slog.Info("subscription purchased",
		"post_id", postID,
		"package_id", in.PackageID,
		"action", in.Action,
		"status", result.Subscription.Status,
	)
	return result, nil
}

// purchaseTx runs the purchase against an already-loaded, row-locked post
// inside the caller's transaction. Post creation reuses it so a post and its
// first subscription commit atomically.
func (s *SubscriptionService) purchaseTx(tx *gorm.DB, post *models.Post, principal identity.Principal, in PurchaseInput) (*SubscriptionPurchase, error) {
	if post.PostType != models.PostTypeLost {
		return nil, ErrWrongPostType
	}

	var pkg models.ServicePackage
	if err := tx.First(&pkg, "id = ?", in.PackageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()

	sub := models.PostSubscription{
		PostID:    post.ID,
		UserID:    principal.UserID,
		PackageID: pkg.ID,
		Action:    in.Action,
		StartDate: now,
		Status:    initialSubscriptionStatus(&pkg, principal.IsAdmin()),
	}

	switch in.Action {
	case models.ActionNew:
		var count int64
		if err := tx.Model(&models.PostSubscription{}).
			Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAlreadySubscribed
		}
		sub.EndDate = subscriptionEndDate(in.Action, nil, now, pkg.DurationDays)

	case models.ActionUpgrade:
		current, err := currentSubscription(tx, post.ID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrNoSubscription
		}

		var currentPkg models.ServicePackage
		if err := tx.First(&currentPkg, "id = ?", current.PackageID).Error; err != nil {
			return nil, err
		}
		if err := validateUpgrade(currentPkg.Tier, pkg.Tier); err != nil {
			return nil, err
		}

		sub.EndDate = subscriptionEndDate(in.Action, &current.EndDate, now, pkg.DurationDays)
		sub.PreviousPackageID = &current.PackageID
		sub.PreviousEndDate = &current.EndDate

		// Supersede the prior slot atomically: never two ACTIVE/PENDING
		// subscriptions for one post.
		if err := tx.Model(&models.PostSubscription{}).
			Where("id = ?", current.ID).
			Update("status", models.SubscriptionCancelled).Error; err != nil {
			return nil, err
		}

	case models.ActionRenew:
		if pkg.IsFree() {
			return nil, fmt.Errorf("%w: renewal requires a paid package", ErrInvalidPackage)
		}

		var latest models.PostSubscription
		err := tx.Where("post_id = ?", post.ID).
			Order("end_date DESC").First(&latest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSubscription
		}
		if err != nil {
			return nil, err
		}
		if err := validateRenew(latest.EndDate, now); err != nil {
			return nil, err
		}
		sub.EndDate = subscriptionEndDate(in.Action, nil, now, pkg.DurationDays)
	}

	if err := tx.Create(&sub).Error; err != nil {
		return nil, err
	}

	payment := models.Payment{
		UserID:        principal.UserID,
		Amount:        pkg.Price,
		PaymentType:   paymentTypeFor(in.Action),
		Status:        paymentStatusFor(sub.Status),
		ProofImageURL: in.ProofImageURL,
		TargetType:    models.TargetSubscription,
		TargetID:      sub.ID,
	}
	if payment.Status == models.PaymentPaid {
		payment.PaidAt = &now
	}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, err
	}

	// An admin purchase activates immediately and approves the post in the
	// same transaction; everyone else goes through the moderation gate
	// (payment confirmation for paid tiers, approval for free ones).
	if sub.Status == models.SubscriptionActive && principal.IsAdmin() && post.Status == models.PostStatusPending {
		post.Status = models.PostStatusApproved
		if err := tx.Model(&models.Post{}).
			Where("id = ?", post.ID).
			Update("status", models.PostStatusApproved).Error; err != nil {
			return nil, err
		}
	}

	return &SubscriptionPurchase{
		Subscription: &sub,
		Payment:      &payment,
		PostStatus:   post.Status,
	}, nil
}

// currentSubscription returns the post's current slot: the latest
// subscription still ACTIVE or PENDING, or nil when none holds the slot.
func currentSubscription(tx *gorm.DB, postID uuid.UUID) (*models.PostSubscription, error) {
	var sub models.PostSubscription
	err := tx.Where("post_id = ? AND status IN ?", postID,
		[]models.SubscriptionStatus{models.SubscriptionActive, models.SubscriptionPending}).
		Order("created_at DESC").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
