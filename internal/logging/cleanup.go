package logging

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
)

// StartCleanup prunes system_logs rows older than the retention window
// once a day until done is closed.
func StartCleanup(db *gorm.DB, retention time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				pruneLogs(db, retention)
			case <-done:
				return
			}
		}
	}()
}

func pruneLogs(db *gorm.DB, retention time.Duration) {
	cutoff := time.Now().Add(-retention)

	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "action", "log_cleanup", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "action", "log_cleanup", "deleted", result.RowsAffected, "cutoff", cutoff)
	}
}
