package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

// NotificationService delivers queued notifications to the inbox.
type NotificationService struct {
	inbox ports.NotificationInbox
	log   zerolog.Logger
	now   func() time.Time
}

func NewNotificationService(inbox ports.NotificationInbox, log zerolog.Logger) *NotificationService {
	return &NotificationService{inbox: inbox, log: log, now: time.Now}
}

// Deliver stamps n and stores it for its recipient.
func (s *NotificationService) Deliver(ctx context.Context, n domain.Notification) error {
	if n.Recipient == "" {
		return fmt.Errorf("deliver notification: empty recipient")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now().UTC()
	}
	if err := s.inbox.Deliver(ctx, n); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	s.log.Debug().Str("notification_id", n.ID).Str("title", n.Title).Msg("notification delivered")
	return nil
}

// Drain returns the recipient's unread notifications and clears them.
func (s *NotificationService) Drain(ctx context.Context, recipient string) ([]domain.Notification, error) {
	out, err := s.inbox.Drain(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("drain notifications: %w", err)
	}
	if out == nil {
		out = []domain.Notification{}
	}
	return out, nil
}
