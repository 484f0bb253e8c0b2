package services

import (
	"context"
	"sort"
	"time"

	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/models"
	"gorm.io/gorm"
)

// ListingService is the read side of the marketplace: ranked public
// listings and the found/resolved views. Ranking is computed at query time,
// never persisted, so it stays consistent through reconciler lag.
type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// RankLess orders public listings: boosted posts first, then active tier
// rank descending, then newest first.
func RankLess(a, b dto.RankedPost) bool {
	if a.IsBoosted != b.IsBoosted {
		return a.IsBoosted
	}
	if a.TierRank != b.TierRank {
		return a.TierRank > b.TierRank
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// ProjectRankedPost resolves a post's effective tier and boost flag at time
// now. The end-date re-check covers the gap between an expiration and the
// next reconciler sweep: a stale ACTIVE subscription or cached boost flag
// contributes nothing once its end date passed.
func ProjectRankedPost(post *models.Post, now time.Time) dto.RankedPost {
	ranked := dto.RankedPost{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Description: post.Description,
		Location:    post.Location,
		Category:    post.Category,
		PostType:    post.PostType,
		ViewCount:   post.ViewCount,
		CreatedAt:   post.CreatedAt,
	}

	if post.IsBoosted && post.BoostUntil != nil && !post.BoostUntil.Before(now) {
		ranked.IsBoosted = true
		ranked.BoostUntil = post.BoostUntil
	}

	for i := range post.Subscriptions {
		sub := &post.Subscriptions[i]
		if sub.Status != models.SubscriptionActive || sub.EndDate.Before(now) {
			continue
		}
		if rank := sub.Package.Tier.Rank(); rank > ranked.TierRank {
			ranked.TierRank = rank
			ranked.PackageName = sub.Package.Name
			ranked.PackageTier = sub.Package.Tier
		}
	}

	return ranked
}

// ListPublicPosts returns approved lost posts ranked per ProjectRankedPost
// and RankLess.
func (s *ListingService) ListPublicPosts(ctx context.Context, q dto.ListQuery) (*dto.PostListResponse, error) {
	return s.list(ctx, q, models.PostStatusApproved, models.PostTypeLost, true)
}

// ListFoundPosts returns approved found posts, newest first (no paid
// ranking on found items).
func (s *ListingService) ListFoundPosts(ctx context.Context, q dto.ListQuery) (*dto.PostListResponse, error) {
	return s.list(ctx, q, models.PostStatusApproved, models.PostTypeFound, false)
}

// ListResolvedPosts returns resolved posts of both types, newest first.
func (s *ListingService) ListResolvedPosts(ctx context.Context, q dto.ListQuery) (*dto.PostListResponse, error) {
	return s.list(ctx, q, models.PostStatusResolved, "", false)
}

func (s *ListingService) list(ctx context.Context, q dto.ListQuery, status models.PostStatus, postType models.PostType, ranked bool) (*dto.PostListResponse, error) {
	page, limit := normalizePage(q.Page, q.Limit)
	now := time.Now().UTC()

	query := s.db.WithContext(ctx).Model(&models.Post{}).Where("status = ?", status)
	if postType != "" {
		query = query.Where("post_type = ?", postType)
	}
	if search := q.Search; search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR location ILIKE ? OR category ILIKE ?",
			like, like, like, like,
		)
	}
	if q.Location != "" {
		query = query.Where("location ILIKE ?", "%"+q.Location+"%")
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := query.
		Preload("Subscriptions", "status = ? AND end_date >= ?", models.SubscriptionActive, now).
		Preload("Subscriptions.Package").
		Order("is_boosted DESC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	items := make([]dto.RankedPost, 0, len(posts))
	for i := range posts {
		items = append(items, ProjectRankedPost(&posts[i], now))
	}
	if ranked {
		sort.SliceStable(items, func(i, j int) bool { return RankLess(items[i], items[j]) })
	}

	return &dto.PostListResponse{
		Items: items,
		Meta: dto.PaginationMeta{
			TotalItems:  total,
			TotalPages:  totalPages(total, limit),
			CurrentPage: page,
			PageSize:    limit,
		},
	}, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
