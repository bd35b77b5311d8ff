package memory

import (
	"context"
	"sync"

	"github.com/propelrent/rentwise/internal/core/domain"
)

type PaymentRepository struct {
	store *orderedStore[domain.PaymentRecord]
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{store: newOrderedStore(
		func(r *domain.PaymentRecord) int64 { return r.ID },
		func(r *domain.PaymentRecord, id int64) { r.ID = id },
	)}
}

func (r *PaymentRepository) List(_ context.Context) ([]*domain.PaymentRecord, error) {
	return r.store.list(), nil
}

func (r *PaymentRepository) Create(_ context.Context, rec *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	return r.store.add(*rec), nil
}

// ReceiptStore keeps idempotency receipts and in-flight claims in maps.
type ReceiptStore struct {
	mu       sync.RWMutex
	receipts map[string]domain.PaymentReceipt
	claims   map[string]struct{}
}

func NewReceiptStore() *ReceiptStore {
	return &ReceiptStore{
		receipts: make(map[string]domain.PaymentReceipt),
		claims:   make(map[string]struct{}),
	}
}

// Claim fails once key is claimed or already holds a receipt.
func (s *ReceiptStore) Claim(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.receipts[key]; ok {
		return false, nil
	}
	if _, ok := s.claims[key]; ok {
		return false, nil
	}
	s.claims[key] = struct{}{}
	return true, nil
}

func (s *ReceiptStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.claims, key)
	return nil
}

func (s *ReceiptStore) Get(_ context.Context, key string) (*domain.PaymentReceipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.receipts[key]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// Put stores the receipt and settles any claim on key.
func (s *ReceiptStore) Put(_ context.Context, key string, receipt *domain.PaymentReceipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.receipts[key] = *receipt
	delete(s.claims, key)
	return nil
}
