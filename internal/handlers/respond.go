package handlers

import (
	"errors"

	"github.com/lostfound-vn/backend/internal/dto"
	"github.com/lostfound-vn/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps service sentinels onto HTTP statuses. Unknown errors
// are internal: the specific reason stays in the log, not the response.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrPackageNotFound):
		return respond(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrForbidden):
		return respond(c, fiber.StatusForbidden, err.Error())

	case errors.Is(err, services.ErrWrongPostType),
		errors.Is(err, services.ErrInvalidPackage),
		errors.Is(err, services.ErrAlreadySubscribed),
		errors.Is(err, services.ErrNoSubscription),
		errors.Is(err, services.ErrInvalidTier),
		errors.Is(err, services.ErrNotExpired),
		errors.Is(err, services.ErrAlreadyApproved),
		errors.Is(err, services.ErrAlreadyRejected),
		errors.Is(err, services.ErrNoPendingPayment),
		errors.Is(err, services.ErrInvalidAction):
		return respond(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrLockBusy):
		return respond(c, fiber.StatusConflict, err.Error())
	}

	return respond(c, fiber.StatusInternalServerError, "Internal server error")
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}
