package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KaaraOpCode/BohlalePOS/internal/core/config"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/session"
)

type SessionHandler struct {
	Terminal *session.Terminal
	Clock    *session.Clock
	Cfg      *config.Config
}

// GetSession returns everything the till header cards render: shop and
// cashier details, the running clock, the transaction counter and the
// ephemeral feedback flags.
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	now := h.Clock.Now()
	start := h.Terminal.SessionStart()

	return c.JSON(fiber.Map{
		"shop": fiber.Map{
			"name":        h.Cfg.ShopName,
			"vat_number":  h.Cfg.VATNumber,
			"terminal_id": h.Cfg.TerminalID,
		},
		"cashier": fiber.Map{
			"name":        h.Cfg.Cashier,
			"shift":       h.Cfg.Shift,
			"till_number": h.Cfg.TillNumber,
		},
		"session": fiber.Map{
			"session_start":     start,
			"current_time":      now,
			"duration_min":      int(now.Sub(start).Minutes()),
			"transaction_count": h.Terminal.TransactionCount(),
			"checkout_state":    h.Terminal.State(),
		},
		"feedback": h.Terminal.Feedback(),
	})
}
