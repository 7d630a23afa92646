package notify

import (
	"context"
	"log/slog"

	"github.com/courtrec/archive-migrator/internal/entity"
)

// Notifier delivers invite notifications to share recipients. Failures are
// always non-fatal to the caller.
type Notifier interface {
	SendInvite(ctx context.Context, invite entity.InviteDraft) error
}

// NoopNotifier is used when notifications are disabled.
type NoopNotifier struct{}

func (NoopNotifier) SendInvite(context.Context, entity.InviteDraft) error { return nil }

// LogNotifier records would-be notifications in the log. Stands in for a
// real delivery channel during migration dry runs.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendInvite(_ context.Context, invite entity.InviteDraft) error {
	n.logger.Info("invite notification", "email", invite.Email, "user_id", invite.UserID)
	return nil
}
