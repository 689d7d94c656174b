package worker

import (
	"log/slog"
	"time"

	"github.com/KaaraOpCode/BohlalePOS/internal/core/session"
)

// StartSessionClock keeps the till's displayed wall clock current on a
// one-second cadence. It runs for the life of the process, like the
// session it serves.
func StartSessionClock(clock *session.Clock) {
	go func() {
		slog.Info("Session clock started")
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for now := range ticker.C {
			clock.Set(now)
		}
	}()
}
