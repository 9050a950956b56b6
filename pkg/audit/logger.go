package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Logger records administrative actions best-effort: a failed append is
// reported to the operational log and never surfaced to the caller, so an
// audit outage cannot abort the primary operation.
type Logger struct {
	repo Repository
	now  func() time.Time
}

// NewLogger creates a new audit logger
func NewLogger(repo Repository) *Logger {
	return &Logger{
		repo: repo,
		now:  time.Now,
	}
}

// Record appends one entry describing action by actor.
// Failures are swallowed by design; callers are not required to inspect
// anything.
func (l *Logger) Record(ctx context.Context, action string, actor Actor, details map[string]interface{}) {
	email := actor.Email
	if email == "" {
		email = SystemActor.Email
	}

	entry := Entry{
		ID:         uuid.New(),
		ActorID:    actor.ID,
		ActorEmail: email,
		Action:     action,
		Details:    details,
		Timestamp:  l.now().UTC(),
	}

	if err := l.repo.Append(ctx, entry); err != nil {
		slog.Error("Failed to append audit entry", "action", action, "actor", email, "err", err)
	}
}

// Recent returns up to limit entries ordered newest first
func (l *Logger) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return l.repo.Recent(ctx, limit)
}
