package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KaaraOpCode/BohlalePOS/internal/adapter/storage"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/domain"
)

type CatalogHandler struct {
	Catalog storage.Catalog
}

// ListProducts returns the catalog filtered by the search box and the
// category dropdown, with a per-product "can_add" so the UI knows which
// add buttons to disable.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	query := c.Query("query")
	category := domain.Category(c.Query("category"))

	products, err := h.Catalog.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load catalog"})
	}

	filtered := domain.Filter(products, query, category)

	items := make([]fiber.Map, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, fiber.Map{
			"id":       p.ID,
			"name":     p.Name,
			"category": p.Category,
			"price":    p.Price.StringFixed(2),
			"stock":    p.Stock,
			"status":   p.Status,
			"can_add":  domain.CanAdd(p),
		})
	}

	return c.JSON(fiber.Map{
		"products":   items,
		"count":      len(items),
		"categories": domain.Categories(),
	})
}
