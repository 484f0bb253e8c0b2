package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Event string

const (
	EventFreePostCreated  Event = "free_post_created"
	EventPostApproved     Event = "post_approved"
	EventPostRejected     Event = "post_rejected"
	EventPaymentConfirmed Event = "payment_confirmed"
	EventExpiryImminent   Event = "expiry_imminent"
)

// Notifier delivers user-facing notifications. Delivery is fire-and-forget:
// callers log failures and never roll back on them.
type Notifier interface {
	Notify(ctx context.Context, event Event, userID, postID uuid.UUID) error
}

// LogNotifier records notifications to the structured log. It stands in for
// the external mail delivery service.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, event Event, userID, postID uuid.UUID) error {
	slog.Info("notification dispatched",
		"event", string(event),
		"user_id", userID,
		"post_id", postID,
	)
	return nil
}
