package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propelrent/rentwise/internal/core/domain"
)

const receiptTTL = 24 * time.Hour

// ReceiptStore keeps payment receipts by tenant-scoped idempotency key.
// Key format: rentwise:receipt:<email>:<idempotency_key>
// Claims live beside them at rentwise:receipt-claim:<email>:<idempotency_key>.
type ReceiptStore struct {
	client *redis.Client
}

// NewReceiptStore creates a ReceiptStore wrapping the given Redis client.
func NewReceiptStore(client *redis.Client) *ReceiptStore {
	return &ReceiptStore{client: client}
}

// Claim marks key as in flight with SET NX. The claim outlives a settled
// charge so a late duplicate finds it and replays the receipt.
func (s *ReceiptStore) Claim(ctx context.Context, scopedKey string) (bool, error) {
	ok, err := s.client.SetNX(ctx, key("receipt-claim", scopedKey), "1", receiptTTL).Result()
	if err != nil {
		return false, fmt.Errorf("receipt claim: %w", err)
	}
	return ok, nil
}

// Release drops the claim on key after a failed charge.
func (s *ReceiptStore) Release(ctx context.Context, scopedKey string) error {
	if err := s.client.Del(ctx, key("receipt-claim", scopedKey)).Err(); err != nil {
		return fmt.Errorf("receipt release: %w", err)
	}
	return nil
}

// Get returns the stored receipt, or nil when the key has not been used.
func (s *ReceiptStore) Get(ctx context.Context, scopedKey string) (*domain.PaymentReceipt, error) {
	raw, err := s.client.Get(ctx, key("receipt", scopedKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("receipt get: %w", err)
	}

	var r domain.PaymentReceipt
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("receipt decode: %w", err)
	}
	return &r, nil
}

// Put records the receipt for scopedKey (expires after receiptTTL).
func (s *ReceiptStore) Put(ctx context.Context, scopedKey string, r *domain.PaymentReceipt) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("receipt encode: %w", err)
	}
	return s.client.Set(ctx, key("receipt", scopedKey), raw, receiptTTL).Err()
}
