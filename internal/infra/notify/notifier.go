package notify

import (
	"context"
	"log/slog"

	"slotwise/internal/usecase/shared"
)

// LogNotifier records notifications in the structured log. Stands in for a
// mail or webhook dispatcher; the Notifier port keeps that swap local.
type LogNotifier struct{}

var _ shared.Notifier = LogNotifier{}

func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) Notify(ctx context.Context, kind shared.NotificationKind, facts shared.RecipientFacts) error {
	slog.InfoContext(ctx, "notification dispatched",
		"kind", string(kind),
		"booking", facts.BookingRef,
		"guest_email", facts.GuestEmail,
		"host_id", facts.HostID.String(),
		"start_time", facts.StartTime,
	)
	return nil
}
