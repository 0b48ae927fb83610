package logging

import (
	"context"
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Setup installs the JSON stdout logger as the process default.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// AttachDatabase upgrades the default logger to a tee: every record still
// goes to stdout as JSON, and ERROR+ records are additionally batched into
// the system_logs table. The returned handler must be stopped on shutdown
// so buffered rows are flushed.
func AttachDatabase(db *gorm.DB) *PGHandler {
	pg := NewPGHandler(db)
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(&teeHandler{stdout: stdout, db: pg}))
	return pg
}

// teeHandler duplicates records to the stdout handler and the database
// sink. Each branch keeps its own level gate, so the sink only sees the
// ERROR+ records it accepts.
type teeHandler struct {
	stdout slog.Handler
	db     slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.stdout.Enabled(ctx, level) || h.db.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error
	if h.stdout.Enabled(ctx, record.Level) {
		err = h.stdout.Handle(ctx, record)
	}
	if h.db.Enabled(ctx, record.Level) {
		if dbErr := h.db.Handle(ctx, record); dbErr != nil && err == nil {
			err = dbErr
		}
	}
	return err
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{stdout: h.stdout.WithAttrs(attrs), db: h.db.WithAttrs(attrs)}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{stdout: h.stdout.WithGroup(name), db: h.db.WithGroup(name)}
}
