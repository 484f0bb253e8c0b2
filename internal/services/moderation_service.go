package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/identity"
	"github.com/lostfound-vn/backend/internal/metrics"
	"github.com/lostfound-vn/backend/internal/models"
	"github.com/lostfound-vn/backend/internal/notify"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModerationService is the admin state machine over post status. It is the
// only path from PENDING to APPROVED for non-admin paid flows.
type ModerationService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewModerationService(db *gorm.DB, notifier notify.Notifier) *ModerationService {
	return &ModerationService{db: db, notifier: notifier}
}

func (s *ModerationService) Moderate(ctx context.Context, postID uuid.UUID, principal identity.Principal, action dto.ModerateAction, reason string) (*models.Post, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}

	var post models.Post
	var event notify.Event

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := validateModeration(post.Status, action); err != nil {
			return err
		}

		switch action {
		case dto.ModerateApprove:
			post.Status = models.PostStatusApproved
			event = notify.EventPostApproved

		case dto.ModerateReject:
			post.Status = models.PostStatusRejected
			post.RejectionReason = reason
			event = notify.EventPostRejected

		case dto.ModerateConfirmPayment:
			if err := s.confirmPayment(tx, post.ID); err != nil {
				return err
			}
			post.Status = models.PostStatusApproved
			event = notify.EventPaymentConfirmed
		}

		return tx.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
			"status":           post.Status,
			"rejection_reason": post.RejectionReason,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if action == dto.ModerateConfirmPayment {
		metrics.PaymentsConfirmed.Inc()
	}

	// Fire-and-forget: delivery failure never rolls back moderation.
	if nerr := s.notifier.Notify(ctx, event, post.UserID, post.ID); nerr != nil {
		slog.Error("moderation notification failed", "event", event, "post_id", post.ID, "error", nerr)
	}

	slog.Info("post moderated", "post_id", post.ID, "action", action, "status", post.Status)
	return &post, nil
}

// confirmPayment settles the single subscription/payment pair waiting on
// manual proof verification: payment PAID, subscription ACTIVE, both in the
// caller's transaction alongside the post approval.
func (s *ModerationService) confirmPayment(tx *gorm.DB, postID uuid.UUID) error {
	var sub models.PostSubscription
	err := tx.Where("post_id = ? AND status = ?", postID, models.SubscriptionPending).
		Order("created_at DESC").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoPendingPayment
	}
	if err != nil {
		return err
	}

	var payment models.Payment
	err = tx.Where("target_type = ? AND target_id = ? AND status = ?",
		models.TargetSubscription, sub.ID, models.PaymentPending).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoPendingPayment
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).Updates(map[string]interface{}{
		"status":  models.PaymentPaid,
		"paid_at": now,
	}).Error; err != nil {
		return err
	}

	return tx.Model(&models.PostSubscription{}).Where("id = ?", sub.ID).
		Update("status", models.SubscriptionActive).Error
}

// PostsNeedingModeration lists pending lost posts for the admin worklist,
// each with its latest pending subscription when one exists.
func (s *ModerationService) PostsNeedingModeration(ctx context.Context, page, limit int) ([]models.Post, int64, error) {
	page, limit = normalizePage(page, limit)

	query := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("status = ? AND post_type = ?", models.PostStatusPending, models.PostTypeLost)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.
		Preload("Subscriptions", "status = ?", models.SubscriptionPending).
		Preload("Subscriptions.Package").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// PostsNeedingPaymentConfirmation lists subscriptions whose payment awaits
// manual proof verification.
func (s *ModerationService) PostsNeedingPaymentConfirmation(ctx context.Context, page, limit int) ([]models.PostSubscription, int64, error) {
	page, limit = normalizePage(page, limit)

	query := s.db.WithContext(ctx).Model(&models.PostSubscription{}).
		Joins("JOIN payments ON payments.target_type = ? AND payments.target_id = post_subscriptions.id", models.TargetSubscription).
		Where("post_subscriptions.status = ? AND payments.status = ?",
			models.SubscriptionPending, models.PaymentPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []models.PostSubscription
	err := query.
		Preload("Package").
		Preload("Post").
		Order("post_subscriptions.created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 15
	}
	return page, limit
}
