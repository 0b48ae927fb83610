package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/repository"
)

// StartSessionCleanup runs an hourly goroutine that removes expired
// session rows. Expired sessions are also rejected on sight at resolve
// time; this just keeps the table from growing.
func StartSessionCleanup(sessions repository.SessionRepository, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := sessions.DeleteExpired(context.Background(), time.Now())
				if err != nil {
					slog.Error("session cleanup failed", "error", err)
				} else if n > 0 {
					slog.Info("session cleanup completed", "deleted", n)
				}
			case <-done:
				return
			}
		}
	}()
}
