package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/identity"
	"github.com/lostfound-vn/backend/internal/models"
	"github.com/lostfound-vn/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	posts         *services.PostService
	subscriptions *services.SubscriptionService
	boosts        *services.BoostService
	listings      *services.ListingService
	stats         *services.StatsService
}

func NewPostHandler(
	posts *services.PostService,
	subscriptions *services.SubscriptionService,
	boosts *services.BoostService,
	listings *services.ListingService,
	stats *services.StatsService,
) *PostHandler {
	return &PostHandler{
		posts:         posts,
		subscriptions: subscriptions,
		boosts:        boosts,
		listings:      listings,
		stats:         stats,
	}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	principal, err := identity.FromContext(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body")
	}

	post, err := h.posts.Create(c.Context(), principal, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) Upgrade(c *fiber.Ctx) error {
	return h.purchase(c, models.ActionUpgrade)
}

func (h *PostHandler) Renew(c *fiber.Ctx) error {
	return h.purchase(c, models.ActionRenew)
}

func (h *PostHandler) purchase(c *fiber.Ctx, action models.SubscriptionAction) error {
	principal, err := identity.FromContext(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var req dto.ServicePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.subscriptions.Purchase(c.Context(), postID, principal, services.PurchaseInput{
		PackageID:     req.PackageID,
		Action:        action,
		ProofImageURL: req.PaymentProofURL,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"subscription": result.Subscription,
		"payment":      result.Payment,
		"post_status":  result.PostStatus,
	})
}

func (h *PostHandler) Boost(c *fiber.Ctx) error {
	principal, err := identity.FromContext(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var req dto.BoostRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.boosts.Purchase(c.Context(), postID, principal, req.DurationDays, req.Price)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"boost_transaction": result.Boost,
		"payment":           result.Payment,
		"message":           "Boost registered, awaiting payment confirmation",
	})
}

func (h *PostHandler) Resolve(c *fiber.Ctx) error {
	principal, err := identity.FromContext(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.posts.Resolve(c.Context(), postID, principal)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	principal, err := identity.FromContext(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	if err := h.posts.SoftDelete(c.Context(), postID, principal); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

func (h *PostHandler) ListPublic(c *fiber.Ctx) error {
	return h.listWith(c, h.listings.ListPublicPosts)
}

func (h *PostHandler) ListFound(c *fiber.Ctx) error {
	return h.listWith(c, h.listings.ListFoundPosts)
}

func (h *PostHandler) ListResolved(c *fiber.Ctx) error {
	return h.listWith(c, h.listings.ListResolvedPosts)
}

func (h *PostHandler) listWith(c *fiber.Ctx, list func(ctx context.Context, q dto.ListQuery) (*dto.PostListResponse, error)) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := list(c.Context(), q)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}

func (h *PostHandler) PackageStats(c *fiber.Ctx) error {
	principal, err := identity.FromContext(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	stats, err := h.stats.UserPackageStats(c.Context(), principal.UserID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}

func (h *PostHandler) BoostStats(c *fiber.Ctx) error {
	principal, err := identity.FromContext(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	stats, err := h.stats.UserBoostStats(c.Context(), principal.UserID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}
