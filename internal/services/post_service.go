package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/identity"
	"github.com/lostfound-vn/backend/internal/models"
	"github.com/lostfound-vn/backend/internal/notify"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostService covers the thin post lifecycle around the engines: creation
// (which may carry the first subscription purchase), owner resolution, and
// soft deletion.
type PostService struct {
	db            *gorm.DB
	subscriptions *SubscriptionService
	notifier      notify.Notifier
}

func NewPostService(db *gorm.DB, subscriptions *SubscriptionService, notifier notify.Notifier) *PostService {
	return &PostService{db: db, subscriptions: subscriptions, notifier: notifier}
}

// initialPostStatus derives the status a fresh post starts in. Found posts
// and admin posts skip moderation; lost posts from regular users wait for
// the gate regardless of package.
func initialPostStatus(postType models.PostType, isAdmin bool) models.PostStatus {
	if postType == models.PostTypeFound || isAdmin {
		return models.PostStatusApproved
	}
	return models.PostStatusPending
}

func (s *PostService) Create(ctx context.Context, principal identity.Principal, req *dto.CreatePostRequest) (*models.Post, error) {
	if req.Title == "" || strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidAction)
	}
	if req.PostType != models.PostTypeLost && req.PostType != models.PostTypeFound {
		return nil, fmt.Errorf("%w: post type must be LOST or FOUND", ErrInvalidAction)
	}
	if req.PostType == models.PostTypeLost {
		if req.PackageID == nil {
			return nil, fmt.Errorf("%w: lost posts must pick a service package", ErrInvalidPackage)
		}
		if *req.PackageID < 1 {
			return nil, ErrInvalidPackage
		}
	}

	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post = models.Post{
			UserID:      principal.UserID,
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			Category:    req.Category,
			PostType:    req.PostType,
			Status:      initialPostStatus(req.PostType, principal.IsAdmin()),
		}

		if err := createWithUniqueSlug(tx, &post); err != nil {
			return err
		}

		if req.PostType == models.PostTypeLost {
			_, err := s.subscriptions.purchaseTx(tx, &post, principal, PurchaseInput{
				PackageID:     *req.PackageID,
				Action:        models.ActionNew,
				ProofImageURL: req.PaymentProofURL,
			})
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.PostType == models.PostTypeLost && *req.PackageID == models.FreePackageID {
		if nerr := s.notifier.Notify(ctx, notify.EventFreePostCreated, post.UserID, post.ID); nerr != nil {
			slog.Error("free post notification failed", "post_id", post.ID, "error", nerr)
		}
	}

	slog.Info("post created", "post_id", post.ID, "type", post.PostType, "status", post.Status)
	return &post, nil
}

// Resolve marks a post as resolved by its owner or an admin.
func (s *PostService) Resolve(ctx context.Context, postID uuid.UUID, principal identity.Principal) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
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

		post.Status = models.PostStatusResolved
		return tx.Model(&models.Post{}).Where("id = ?", post.ID).
			Update("status", models.PostStatusResolved).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SoftDelete hides a post from all listings without destroying its
// financial trail.
func (s *PostService) SoftDelete(ctx context.Context, postID uuid.UUID, principal identity.Principal) error {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if post.UserID != principal.UserID && !principal.IsAdmin() {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Delete(&post).Error
}

// createWithUniqueSlug inserts the post, suffixing the slug when the title
// already produced one. The check and insert run inside the caller's
// transaction; a race on the unique index still surfaces as an insert error.
func createWithUniqueSlug(tx *gorm.DB, post *models.Post) error {
	post.Slug = slugify(post.Title)

	var count int64
	if err := tx.Model(&models.Post{}).Unscoped().
		Where("slug = ?", post.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		post.Slug = post.Slug + "-" + randomSuffix()
	}

	return tx.Create(post).Error
}

// slugify lowercases, strips diacritic-free non-alphanumerics, and joins
// words with hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func randomSuffix() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
