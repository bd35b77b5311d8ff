package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// Notifier queues a notification for asynchronous delivery.
type Notifier interface {
	Notify(n domain.Notification)
}

// NotificationInbox stores delivered notifications per recipient.
type NotificationInbox interface {
	Deliver(ctx context.Context, n domain.Notification) error
	// Drain returns and removes every notification for recipient, oldest first.
	Drain(ctx context.Context, recipient string) ([]domain.Notification, error)
}

// OwnerDirectory lists property owners from an external collaborator.
type OwnerDirectory interface {
	ListOwners(ctx context.Context) ([]domain.Owner, error)
}
