package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

const defaultPaymentTimeout = 10 * time.Second

// PaymentService submits rent payments to the processor and records them in
// the payment history once settled.
type PaymentService struct {
	processor  ports.PaymentProcessor
	payments   ports.PaymentRepository
	tenants    ports.TenantRepository
	properties ports.PropertyRepository
	receipts   ports.ReceiptStore
	notifier   ports.Notifier
	timeout    time.Duration
	log        zerolog.Logger
	now        func() time.Time
}

func NewPaymentService(
	processor ports.PaymentProcessor,
	payments ports.PaymentRepository,
	tenants ports.TenantRepository,
	properties ports.PropertyRepository,
	receipts ports.ReceiptStore,
	notifier ports.Notifier,
	timeout time.Duration,
	log zerolog.Logger,
) *PaymentService {
	if timeout <= 0 {
		timeout = defaultPaymentTimeout
	}
	return &PaymentService{
		processor:  processor,
		payments:   payments,
		tenants:    tenants,
		properties: properties,
		receipts:   receipts,
		notifier:   notifier,
		timeout:    timeout,
		log:        log,
		now:        time.Now,
	}
}

// Submit charges the form amount and waits for the processor to settle.
// A repeated idempotency key from the same tenant returns the stored receipt
// without charging. The key is claimed before charging, so concurrent
// repeats never reach the processor twice.
func (s *PaymentService) Submit(ctx context.Context, in ports.SubmitPaymentInput) (*ports.SubmitPaymentResult, error) {
	if err := in.Form.Validate(); err != nil {
		return nil, err
	}

	key := receiptKey(in.Email, in.IdempotencyKey)
	claimed := false
	if key != "" {
		var replay *ports.SubmitPaymentResult
		var err error
		replay, claimed, err = s.claim(ctx, key, in)
		if err != nil || replay != nil {
			return replay, err
		}
	}

	chargeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.processor.Charge(chargeCtx, ports.ChargeRequest{
		Email:  in.Email,
		Amount: in.Form.Amount,
		Method: in.Form.Method,
	})
	if err != nil {
		if claimed {
			s.release(ctx, key)
		}
		return nil, s.chargeError(ctx, chargeCtx, err)
	}

	now := s.now().UTC()
	record, err := s.payments.Create(ctx, s.paidRecord(ctx, in, now))
	if err != nil {
		// The charge went through; losing the history row is logged, not fatal.
		s.log.Error().Err(err).Str("email", in.Email).Msg("failed to record settled payment")
		record = &domain.PaymentRecord{}
	}

	receipt := &domain.PaymentReceipt{
		ID:          uuid.NewString(),
		PaymentID:   record.ID,
		Amount:      in.Form.Amount,
		Method:      in.Form.Method,
		ProcessedAt: now,
		Message: fmt.Sprintf("Your rent payment of %s has been processed successfully.",
			domain.FormatRupees(in.Form.Amount)),
	}

	if key != "" {
		if err := s.receipts.Put(ctx, key, receipt); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("failed to store receipt")
		}
	}

	if s.notifier != nil {
		s.notifier.Notify(domain.Notification{
			Recipient: in.Email,
			Title:     "Payment Successful!",
			Message:   receipt.Message,
		})
	}

	s.log.Info().
		Str("receipt_id", receipt.ID).
		Int64("amount", receipt.Amount).
		Str("method", string(receipt.Method)).
		Msg("payment processed")

	return &ports.SubmitPaymentResult{Receipt: receipt}, nil
}

// claim resolves an idempotency key before charging. It returns the replay
// result when a receipt already exists, or claimed=false when the store is
// unreachable and the charge goes ahead unguarded.
func (s *PaymentService) claim(ctx context.Context, key string, in ports.SubmitPaymentInput) (*ports.SubmitPaymentResult, bool, error) {
	if replay, err := s.replay(ctx, key, in); err != nil || replay != nil {
		return replay, false, err
	}

	ok, err := s.receipts.Claim(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("receipt claim failed, charging anyway")
		return nil, false, nil
	}
	if ok {
		return nil, true, nil
	}

	// Someone else holds the key; their receipt may have landed meanwhile.
	if replay, err := s.replay(ctx, key, in); err != nil || replay != nil {
		return replay, false, err
	}
	return nil, false, fmt.Errorf("submit payment: %w", domain.ErrPaymentInFlight)
}

// replay returns the stored receipt for key, provided it was issued for the
// same amount and method.
func (s *PaymentService) replay(ctx context.Context, key string, in ports.SubmitPaymentInput) (*ports.SubmitPaymentResult, error) {
	existing, err := s.receipts.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("receipt lookup failed")
		return nil, nil
	}
	if existing == nil {
		return nil, nil
	}
	if existing.Amount != in.Form.Amount || existing.Method != in.Form.Method {
		return nil, fmt.Errorf("submit payment: %w", domain.ErrKeyReused)
	}
	s.log.Info().Str("idempotency_key", in.IdempotencyKey).Str("receipt_id", existing.ID).Msg("idempotent replay")
	return &ports.SubmitPaymentResult{Receipt: existing, Replayed: true}, nil
}

// release frees a claim whose charge failed so the tenant can retry.
func (s *PaymentService) release(ctx context.Context, key string) {
	if err := s.receipts.Release(context.WithoutCancel(ctx), key); err != nil {
		s.log.Warn().Err(err).Msg("failed to release receipt claim")
	}
}

// receiptKey scopes an idempotency key to the submitting tenant.
func receiptKey(email, idempotencyKey string) string {
	if idempotencyKey == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email)) + ":" + idempotencyKey
}

// chargeError classifies a processor failure. The caller's own cancellation
// wins over the internal deadline.
func (s *PaymentService) chargeError(parent, chargeCtx context.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrPaymentDeclined):
		return fmt.Errorf("submit payment: %w", err)
	case parent.Err() != nil:
		return fmt.Errorf("submit payment: %w", domain.ErrPaymentCancelled)
	case errors.Is(chargeCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("submit payment: %w after %s", domain.ErrPaymentTimeout, s.timeout)
	}
	return fmt.Errorf("submit payment: %w", err)
}

// paidRecord builds the history row for a settled payment. Tenants unknown to
// the tenant list are recorded under their email against the demo lease.
func (s *PaymentService) paidRecord(ctx context.Context, in ports.SubmitPaymentInput, now time.Time) *domain.PaymentRecord {
	date := now.Format(domain.DateLayout)
	method := in.Form.Method.Label()
	rec := &domain.PaymentRecord{
		Tenant:   in.Email,
		Property: demoLease.PropertyName,
		Amount:   in.Form.Amount,
		Date:     &date,
		DueDate:  firstOfMonth(now).Format(domain.DateLayout),
		Status:   domain.PaymentPaid,
		Method:   &method,
	}

	t, err := s.tenants.FindByEmail(ctx, in.Email)
	if err != nil {
		return rec
	}
	id := t.ID
	rec.TenantID = &id
	rec.Tenant = t.Name
	rec.Property = ""
	if p, err := s.properties.FindByID(ctx, t.PropertyID); err == nil {
		rec.Property = p.Label()
	}
	return rec
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
