package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port        string
	DatabaseURL string
	Env         string

	// Pricing is fixed per session, not negotiated at runtime.
	DiscountRate decimal.Decimal
	TaxRate      decimal.Decimal
	Currency     string

	// Market tills prompt for a receipt channel after payment; order
	// desks do not.
	ReceiptPrompt     bool
	ReceiptWebhookURL string

	// Inert display data for the till header cards.
	ShopName   string
	VATNumber  string
	TerminalID string
	Cashier    string
	Shift      string
	TillNumber string
}

// Load reads .env and returns the terminal configuration
func Load() *Config {
	// Try loading .env file (it might not exist in production, which is fine)
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on system env variables")
	}

	return &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Env:         getEnv("ENV", "development"),

		DiscountRate: getDecimalEnv("DISCOUNT_RATE", "0.10"),
		TaxRate:      getDecimalEnv("TAX_RATE", "0.15"),
		Currency:     getEnv("CURRENCY", "LSL"),

		ReceiptPrompt:     getEnv("RECEIPT_PROMPT", "true") == "true",
		ReceiptWebhookURL: getEnv("RECEIPT_WEBHOOK_URL", ""),

		ShopName:   getEnv("SHOP_NAME", "Downtown Store"),
		VATNumber:  getEnv("VAT_NUMBER", "VAT-123456789"),
		TerminalID: getEnv("TERMINAL_ID", "TILL-01"),
		Cashier:    getEnv("CASHIER_NAME", "John Doe"),
		Shift:      getEnv("SHIFT", "Morning"),
		TillNumber: getEnv("TILL_NUMBER", "4"),
	}
}

// Helper to get env with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDecimalEnv(key, fallback string) decimal.Decimal {
	raw := getEnv(key, fallback)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		slog.Warn("Invalid decimal in env, using fallback", "key", key, "value", raw, "fallback", fallback)
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}
