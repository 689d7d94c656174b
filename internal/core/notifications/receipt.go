package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KaaraOpCode/BohlalePOS/internal/core/domain"
)

// Channel is how the customer wants their receipt.
type Channel string

const (
	ChannelPrint Channel = "print"
	ChannelEmail Channel = "email"
	ChannelQR    Channel = "qr"
	ChannelNone  Channel = "none"
)

// ParseChannel validates a channel tag from a request.
func ParseChannel(s string) (Channel, bool) {
	switch Channel(s) {
	case ChannelPrint, ChannelEmail, ChannelQR, ChannelNone:
		return Channel(s), true
	}
	return "", false
}

// Dispatcher hands a completed order to the receipt channel the
// customer picked. Actual delivery (printer driver, mail service, QR
// renderer) lives behind the webhook; from the till's side the call is
// fire-and-forget and its outcome never touches core state.
type Dispatcher struct {
	WebhookURL string
	Currency   string
}

func NewDispatcher(webhookURL, currency string) *Dispatcher {
	return &Dispatcher{WebhookURL: webhookURL, Currency: currency}
}

// Dispatch routes the order to the chosen channel. Call it from a
// goroutine: it may do network I/O and must never hold up checkout.
func (d *Dispatcher) Dispatch(channel Channel, order domain.Order) {
	total := domain.NewMoney(order.TotalAmount, d.Currency)

	switch channel {
	case ChannelNone:
		return
	case ChannelPrint:
		slog.Info("Receipt sent to printer", "order_id", order.ID, "total", total.Display(), "items", len(order.Items))
	case ChannelEmail, ChannelQR:
		if d.WebhookURL == "" {
			slog.Warn("No receipt webhook configured, dropping receipt", "channel", channel, "order_id", order.ID)
			return
		}
		payload := map[string]interface{}{
			"event":   "receipt.requested",
			"channel": channel,
			"data": map[string]interface{}{
				"order_id":     order.ID,
				"total_amount": total.DisplayAmount(),
				"currency":     total.Currency,
				"items":        len(order.Items),
				"timestamp":    time.Now(),
			},
		}
		if err := send(d.WebhookURL, payload); err != nil {
			slog.Error("Receipt webhook failed", "error", err, "channel", channel, "order_id", order.ID)
		} else {
			slog.Info("Receipt webhook sent", "channel", channel, "order_id", order.ID)
		}
	}
}

// send posts the JSON payload to the receipt service.
func send(url string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "BohlalePOS-Receipt/1.0")

	// Timeout so a slow receipt service never backs up the till.
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("receipt service returned error: %d", resp.StatusCode)
}
