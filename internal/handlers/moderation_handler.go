package handlers

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/identity"
	"github.com/lostfound-vn/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ModerationHandler struct {
	moderation *services.ModerationService
}

func NewModerationHandler(moderation *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

// Moderate applies an admin decision: APPROVE, REJECT, or CONFIRM_PAYMENT.
func (h *ModerationHandler) Moderate(c *fiber.Ctx) error {
	principal, err := identity.FromContext(c)
	if err != nil {
		return respond(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid post ID")
	}

	var req dto.ModeratePostRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Invalid request body")
	}

	post, err := h.moderation.Moderate(c.Context(), postID, principal, req.Action, req.Reason)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": moderationMessage(req.Action),
		"post":    post,
	})
}

func (h *ModerationHandler) PendingPosts(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	posts, total, err := h.moderation.PostsNeedingModeration(c.Context(), page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"meta":  paginationMeta(total, page, limit),
	})
}

func (h *ModerationHandler) PendingPayments(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	subs, total, err := h.moderation.PostsNeedingPaymentConfirmation(c.Context(), page, limit)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"subscriptions": subs,
		"meta":          paginationMeta(total, page, limit),
	})
}

func moderationMessage(action dto.ModerateAction) string {
	switch action {
	case dto.ModerateApprove:
		return "Post approved"
	case dto.ModerateReject:
		return "Post rejected"
	case dto.ModerateConfirmPayment:
		return "Payment confirmed"
	}
	return ""
}

func pageParams(c *fiber.Ctx) (int, int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "15"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 15
	}
	return page, limit
}

func paginationMeta(total int64, page, limit int) dto.PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return dto.PaginationMeta{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    limit,
	}
}
