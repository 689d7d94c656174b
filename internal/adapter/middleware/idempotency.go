package middleware

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
)

type cachedResponse struct {
	status int
	body   []byte
}

// Idempotency caches the response to a request carrying an
// Idempotency-Key header and replays it on retries, so a double-tapped
// confirm never charges twice. The cache lives in memory and dies with
// the session, like everything else on the till.
func Idempotency() fiber.Handler {
	var mu sync.Mutex
	seen := make(map[string]cachedResponse)

	return func(c *fiber.Ctx) error {
		key := c.Get("Idempotency-Key")

		// If no key, skip
		if key == "" {
			return c.Next()
		}

		mu.Lock()
		cached, hit := seen[key]
		mu.Unlock()

		if hit {
			slog.Info("Idempotency hit, returning cached response", "key", key)
			c.Set("X-Idempotency-Hit", "true")
			c.Set("Content-Type", "application/json")
			return c.Status(cached.status).Send(cached.body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Copy the body; fiber reuses response buffers.
		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())

		mu.Lock()
		seen[key] = cachedResponse{status: c.Response().StatusCode(), body: body}
		mu.Unlock()

		return nil
	}
}
