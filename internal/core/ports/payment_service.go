package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// HistoryQuery filters the payment history table.
type HistoryQuery struct {
	Search string
	Status string // "all", "paid", "pending" or "overdue"; empty = all
}

// PaymentHistory is the filtered table plus totals over the full history.
type PaymentHistory struct {
	Records []*domain.PaymentRecord
	Summary domain.PaymentSummary
	Total   int
}

// PaymentHistoryService answers payment history queries.
type PaymentHistoryService interface {
	History(ctx context.Context, q HistoryQuery) (*PaymentHistory, error)
	ForTenant(ctx context.Context, tenantName string) ([]*domain.PaymentRecord, error)
}

// SubmitPaymentInput is a tenant's rent payment submission.
type SubmitPaymentInput struct {
	Email          string
	IdempotencyKey string
	Form           domain.PaymentForm
}

// SubmitPaymentResult is returned once the payment settled.
type SubmitPaymentResult struct {
	Receipt *domain.PaymentReceipt
	// Replayed is true when the Idempotency-Key matched an earlier submission.
	Replayed bool
}

// PaymentService submits rent payments.
type PaymentService interface {
	Submit(ctx context.Context, in SubmitPaymentInput) (*SubmitPaymentResult, error)
}
