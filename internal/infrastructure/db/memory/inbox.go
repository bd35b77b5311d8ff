package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// Inbox holds delivered notifications until the recipient reads them.
type Inbox struct {
	mu    sync.Mutex
	boxes map[string][]domain.Notification
}

func NewInbox() *Inbox {
	return &Inbox{boxes: make(map[string][]domain.Notification)}
}

func (in *Inbox) Deliver(_ context.Context, n domain.Notification) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	key := strings.ToLower(n.Recipient)
	in.boxes[key] = append(in.boxes[key], n)
	return nil
}

func (in *Inbox) Drain(_ context.Context, recipient string) ([]domain.Notification, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	key := strings.ToLower(recipient)
	out := in.boxes[key]
	delete(in.boxes, key)
	return out, nil
}
