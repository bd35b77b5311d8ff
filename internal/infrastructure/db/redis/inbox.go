package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propelrent/rentwise/internal/core/domain"
)

const inboxTTL = 24 * time.Hour

// Inbox keeps each recipient's undelivered notifications in a list.
// Key format: rentwise:inbox:<lowercased_email>
type Inbox struct {
	client *redis.Client
}

func NewInbox(client *redis.Client) *Inbox {
	return &Inbox{client: client}
}

func (b *Inbox) Deliver(ctx context.Context, n domain.Notification) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("inbox encode: %w", err)
	}
	k := key("inbox", strings.ToLower(n.Recipient))
	_, err = b.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, k, raw)
		p.Expire(ctx, k, inboxTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("inbox deliver: %w", err)
	}
	return nil
}

// Drain reads and clears the recipient's list in one transaction.
func (b *Inbox) Drain(ctx context.Context, recipient string) ([]domain.Notification, error) {
	k := key("inbox", strings.ToLower(recipient))
	var items *redis.StringSliceCmd
	_, err := b.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		items = p.LRange(ctx, k, 0, -1)
		p.Del(ctx, k)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inbox drain: %w", err)
	}

	out := make([]domain.Notification, 0, len(items.Val()))
	for _, raw := range items.Val() {
		var n domain.Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			return nil, fmt.Errorf("inbox decode: %w", err)
		}
		n.Recipient = recipient
		out = append(out, n)
	}
	return out, nil
}
