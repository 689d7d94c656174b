package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/KaaraOpCode/BohlalePOS/internal/adapter/handler"
	"github.com/KaaraOpCode/BohlalePOS/internal/adapter/middleware"
	"github.com/KaaraOpCode/BohlalePOS/internal/adapter/storage"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/config"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/domain"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/notifications"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/session"
	"github.com/KaaraOpCode/BohlalePOS/internal/core/worker"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Catalog source: Postgres when configured, built-in seed otherwise
	var catalog storage.Catalog
	if cfg.DatabaseURL != "" {
		pool, err := storage.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			slog.Error("Database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		catalog = storage.NewCatalogRepository(pool)
		slog.Info("Catalog loaded from Postgres")
	} else {
		catalog = storage.NewSeedCatalog()
		slog.Warn("No DATABASE_URL set, using built-in seed catalog")
	}

	// 4. Terminal session + collaborators
	terminal := session.NewTerminal(session.Config{
		Rates:         domain.Rates{Discount: cfg.DiscountRate, Tax: cfg.TaxRate},
		ReceiptPrompt: cfg.ReceiptPrompt,
	})
	clock := session.NewClock()
	dispatcher := notifications.NewDispatcher(cfg.ReceiptWebhookURL, cfg.Currency)

	// 5. Handlers
	catalogHandler := &handler.CatalogHandler{Catalog: catalog}
	cartHandler := &handler.CartHandler{Catalog: catalog, Terminal: terminal, Currency: cfg.Currency}
	checkoutHandler := &handler.CheckoutHandler{Terminal: terminal, Dispatcher: dispatcher, Currency: cfg.Currency}
	sessionHandler := &handler.SessionHandler{Terminal: terminal, Clock: clock, Cfg: cfg}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/v1")

	api.Get("/products", catalogHandler.ListProducts)

	api.Get("/cart", cartHandler.GetCart)
	api.Post("/cart/items", cartHandler.AddItem)
	api.Patch("/cart/items/:lineId", cartHandler.UpdateItem)
	api.Delete("/cart/items/:lineId", cartHandler.DeleteItem)

	api.Post("/checkout", checkoutHandler.Begin)
	api.Post("/checkout/cancel", checkoutHandler.Cancel)
	api.Post("/checkout/confirm", middleware.Idempotency(), checkoutHandler.Confirm)
	api.Post("/checkout/receipt", checkoutHandler.Receipt)

	api.Get("/session", sessionHandler.GetSession)

	// 8. Start the session clock worker
	worker.StartSessionClock(clock)

	// Graceful shutdown: finish the sale in flight, then go home.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Till starting", "env", cfg.Env, "port", cfg.Port, "terminal", cfg.TerminalID)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutting down till...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	slog.Info("Till exited", "transactions", terminal.TransactionCount())
}
