package handlers

import (
	"github.com/lostfound-vn/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListPackages(c *fiber.Ctx) error {
	packages, err := h.catalog.ListPackages(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"packages": packages})
}
