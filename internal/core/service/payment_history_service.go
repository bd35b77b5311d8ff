package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

type PaymentHistoryService struct {
	repo ports.PaymentRepository
}

func NewPaymentHistoryService(repo ports.PaymentRepository) *PaymentHistoryService {
	return &PaymentHistoryService{repo: repo}
}

// History filters the table rows by q. The summary is always computed over
// the complete history, independent of q.
func (s *PaymentHistoryService) History(ctx context.Context, q ports.HistoryQuery) (*ports.PaymentHistory, error) {
	status, err := domain.ParseStatusFilter(q.Status)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("payment history: %w", err)
	}

	return &ports.PaymentHistory{
		Records: domain.FilterPayments(all, q.Search, status),
		Summary: domain.SummarizePayments(all),
		Total:   len(all),
	}, nil
}

// ForTenant returns every record whose tenant name equals tenantName, ignoring case.
func (s *PaymentHistoryService) ForTenant(ctx context.Context, tenantName string) ([]*domain.PaymentRecord, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("tenant payments: %w", err)
	}
	var out []*domain.PaymentRecord
	for _, r := range all {
		if strings.EqualFold(r.Tenant, tenantName) {
			out = append(out, r)
		}
	}
	return out, nil
}
