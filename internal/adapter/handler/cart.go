package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KaaraOpCode/BohlalePOS/internal/adapter/storage"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/domain"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/session"
)

type CartHandler struct {
	Catalog  storage.Catalog
	Terminal *session.Terminal
	Currency string
}

// Request models
type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the line snapshot plus the freshly priced totals.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	lines, pricing, totalItems := h.Terminal.Cart()

	items := make([]fiber.Map, 0, len(lines))
	for _, line := range lines {
		lineTotal := line.Product.Price.Mul(decimalFromInt(line.Quantity))
		items = append(items, fiber.Map{
			"line_id":    line.LineID,
			"product_id": line.Product.ID,
			"name":       line.Product.Name,
			"price":      line.Product.Price.StringFixed(2),
			"quantity":   line.Quantity,
			"line_total": lineTotal.StringFixed(2),
		})
	}

	return c.JSON(fiber.Map{
		"items":       items,
		"total_items": totalItems,
		"totals":      pricingPayload(pricing, h.Currency),
	})
}

// AddItem puts one unit of a product in the cart, guard included.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_id is required"})
	}

	product, err := h.Catalog.Get(c.Context(), req.ProductID)
	if errors.Is(err, storage.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load product"})
	}

	line, err := h.Terminal.AddProduct(product)
	if errors.Is(err, session.ErrNotEligible) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Product is out of stock or inactive"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"line_id":  line.LineID,
		"quantity": line.Quantity,
	})
}

// UpdateItem sets a line's quantity; zero or negative removes the line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	lineID, err := uuid.Parse(c.Params("lineId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid line id"})
	}

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	h.Terminal.SetQuantity(lineID, req.Quantity)
	return c.JSON(fiber.Map{"status": "success"})
}

// DeleteItem removes a line. Unknown lines succeed quietly.
func (h *CartHandler) DeleteItem(c *fiber.Ctx) error {
	lineID, err := uuid.Parse(c.Params("lineId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid line id"})
	}

	h.Terminal.RemoveLine(lineID)
	return c.JSON(fiber.Map{"status": "success"})
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func pricingPayload(p domain.PricingResult, currency string) fiber.Map {
	return fiber.Map{
		"subtotal":    p.Subtotal.StringFixed(2),
		"discount":    p.DiscountAmount.StringFixed(2),
		"vat":         p.TaxAmount.StringFixed(2),
		"grand_total": p.TotalAmount.StringFixed(2),
		"currency":    currency,
	}
}
