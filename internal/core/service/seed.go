package service

import (
	"context"
	"fmt"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

type seedTenant struct {
	draft    domain.TenantDraft
	property int // index into seedProperties
}

var seedProperties = []domain.PropertyDraft{
	{Name: "Sunset Apartments 2A", Address: "123 Main St, Downtown", Rent: 85000, Status: domain.PropertyVacant},
	{Name: "Oak View Condos 3B", Address: "456 Oak Ave, Midtown", Rent: 105000, Status: domain.PropertyVacant},
	{Name: "Pine Heights Studio 1C", Address: "789 Pine Rd, Uptown", Rent: 65000, Status: domain.PropertyVacant},
}

var seedTenants = []seedTenant{
	{property: 0, draft: domain.TenantDraft{
		Name: "Raju", Email: "raju@gmail.com", Phone: "(555) 123-4567",
		LeaseStart: "2024-01-01", LeaseEnd: "2024-12-31", Rent: 85000, Status: domain.TenantActive,
	}},
	{property: 1, draft: domain.TenantDraft{
		Name: "Geetha", Email: "geetha@gmail.com", Phone: "(555) 987-6543",
		LeaseStart: "2023-06-01", LeaseEnd: "2024-05-31", Rent: 105000, Status: domain.TenantActive,
	}},
	{property: 2, draft: domain.TenantDraft{
		Name: "Sita", Email: "sita@gmail.com", Phone: "(555) 456-7890",
		LeaseStart: "2024-02-01", LeaseEnd: "2025-01-31", Rent: 65000, Status: domain.TenantPending,
	}},
}

// SeedPayments is the initial payment history: one paid, one pending and
// one overdue record.
func SeedPayments() []*domain.PaymentRecord {
	str := func(s string) *string { return &s }
	return []*domain.PaymentRecord{
		{Tenant: "Raju", Property: "Sunset Apartments 2A", Amount: 85000, Date: str("2024-01-15"),
			DueDate: "2024-01-01", Status: domain.PaymentPaid, Method: str("Bank Transfer")},
		{Tenant: "Sita", Property: "Pine Heights Studio 1C", Amount: 65000,
			DueDate: "2024-01-01", Status: domain.PaymentPending, Late: true},
		{Tenant: "Ram", Property: "Garden Villa 5B", Amount: 95000,
			DueDate: "2024-01-01", Status: domain.PaymentOverdue, Late: true},
	}
}

// Seed loads the sample listings and payment history into empty repositories.
// Non-empty repositories are left alone.
func Seed(ctx context.Context, props *PropertyService, tenants *TenantService, payments ports.PaymentRepository) error {
	existing, err := props.properties.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	ids := make([]int64, len(seedProperties))
	for i, d := range seedProperties {
		p, err := props.Create(ctx, d)
		if err != nil {
			return fmt.Errorf("seed property %q: %w", d.Name, err)
		}
		ids[i] = p.Property.ID
	}

	byName := make(map[string]int64, len(seedTenants))
	for _, st := range seedTenants {
		d := st.draft
		d.PropertyID = ids[st.property]
		t, err := tenants.Create(ctx, d)
		if err != nil {
			return fmt.Errorf("seed tenant %q: %w", d.Name, err)
		}
		byName[t.Tenant.Name] = t.Tenant.ID
	}

	for _, rec := range SeedPayments() {
		if id, ok := byName[rec.Tenant]; ok {
			rec.TenantID = &id
		}
		if _, err := payments.Create(ctx, rec); err != nil {
			return fmt.Errorf("seed payment: %w", err)
		}
	}
	return nil
}
