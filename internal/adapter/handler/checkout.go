package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/KaaraOpCode/BohlalePOS/internal/core/domain"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/notifications"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/session"
)

type CheckoutHandler struct {
	Terminal   *session.Terminal
	Dispatcher *notifications.Dispatcher
	Currency   string
}

type ConfirmRequest struct {
	PaymentMethod string `json:"payment_method"`
	CustomerType  string `json:"customer_type"`
	SaleType      string `json:"sale_type"`
}

type ReceiptRequest struct {
	Channel string `json:"channel"`
}

// Begin opens the payment-method selection: Idle -> AwaitingMethod.
func (h *CheckoutHandler) Begin(c *fiber.Ctx) error {
	err := h.Terminal.BeginCheckout()
	if errors.Is(err, session.ErrEmptyCart) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Cart is empty"})
	}
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Checkout already in progress"})
	}
	return c.JSON(fiber.Map{"status": "success", "state": h.Terminal.State()})
}

// Cancel aborts the checkout; the cart is untouched.
func (h *CheckoutHandler) Cancel(c *fiber.Ctx) error {
	if err := h.Terminal.CancelCheckout(); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No checkout to cancel"})
	}
	return c.JSON(fiber.Map{"status": "success", "state": h.Terminal.State()})
}

// Confirm settles the sale with the chosen payment method.
func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.PaymentMethod == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "payment_method is required"})
	}

	// Walk-in defaults, same as the till UI preselects.
	customerType := domain.CustomerType(req.CustomerType)
	if customerType == "" {
		customerType = domain.CustomerIndividual
	}
	saleType := domain.SaleType(req.SaleType)
	if saleType == "" {
		saleType = domain.SaleRetail
	}

	order, txn, err := h.Terminal.CompleteCheckout(req.PaymentMethod, customerType, saleType)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No payment awaiting confirmation"})
	}

	total := domain.NewMoney(order.TotalAmount, h.Currency)
	return c.JSON(fiber.Map{
		"status":            "success",
		"order_id":          order.ID,
		"transaction_id":    txn.ID,
		"total":             total.Display(),
		"transaction_count": h.Terminal.TransactionCount(),
		"state":             h.Terminal.State(),
	})
}

// Receipt resolves the receipt prompt. The delivery itself runs in the
// background; its outcome never reaches the till.
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	var req ReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	channel, ok := notifications.ParseChannel(req.Channel)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown receipt channel"})
	}

	order, err := h.Terminal.SelectReceipt()
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No receipt awaiting selection"})
	}

	go h.Dispatcher.Dispatch(channel, order)

	return c.JSON(fiber.Map{"status": "success", "state": h.Terminal.State()})
}
