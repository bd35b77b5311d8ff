package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// PaymentRepository stores the payment history in insertion order.
type PaymentRepository interface {
	List(ctx context.Context) ([]*domain.PaymentRecord, error)
	Create(ctx context.Context, r *domain.PaymentRecord) (*domain.PaymentRecord, error)
}

// ReceiptStore remembers receipts by idempotency key so retried
// submissions replay instead of charging twice. Keys are scoped to the
// submitting tenant by the caller.
type ReceiptStore interface {
	// Claim reserves key for a single charge. It reports false when the key
	// is already claimed.
	Claim(ctx context.Context, key string) (bool, error)
	// Release drops a claim whose charge did not settle.
	Release(ctx context.Context, key string) error
	// Get returns (nil, nil) when no receipt is stored for key.
	Get(ctx context.Context, key string) (*domain.PaymentReceipt, error)
	Put(ctx context.Context, key string, receipt *domain.PaymentReceipt) error
}

// ChargeRequest is what the payment processor sees of a submission.
type ChargeRequest struct {
	Email  string
	Amount int64
	Method domain.PaymentMethod
}

// PaymentProcessor settles a charge. Implementations must honour ctx.
type PaymentProcessor interface {
	Charge(ctx context.Context, req ChargeRequest) error
}
