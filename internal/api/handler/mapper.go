package handler

import (
	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

// --- Request → Service input ---

// toPropertyDraft overlays the request on the blank form, so an omitted
// status keeps the form default.
func toPropertyDraft(r propertyRequest) domain.PropertyDraft {
	d := domain.NewPropertyDraft()
	d.Name = r.Name
	d.Address = r.Address
	d.Rent = r.Rent
	if r.Status != "" {
		d.Status = domain.PropertyStatus(r.Status)
	}
	return d
}

func toTenantDraft(r tenantRequest) domain.TenantDraft {
	d := domain.NewTenantDraft()
	d.Name = r.Name
	d.Email = r.Email
	d.Phone = r.Phone
	d.PropertyID = r.PropertyID
	d.LeaseStart = r.LeaseStart
	d.LeaseEnd = r.LeaseEnd
	d.Rent = r.Rent
	if r.Status != "" {
		d.Status = domain.TenantStatus(r.Status)
	}
	return d
}

func toPaymentForm(r submitPaymentRequest) domain.PaymentForm {
	return domain.PaymentForm{
		Amount:        r.Amount,
		Method:        domain.PaymentMethod(r.Method),
		CardNumber:    r.CardNumber,
		ExpiryDate:    r.ExpiryDate,
		CVV:           r.CVV,
		CardName:      r.CardName,
		BankAccount:   r.BankAccount,
		RoutingNumber: r.RoutingNumber,
	}
}

// --- Service result → HTTP response ---

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:          s.ID,
		UserType:    string(s.Type),
		Email:       s.Email,
		DisplayName: domain.DisplayName(s.Email),
		Stage:       string(s.Stage),
		View:        s.View(),
		CreatedAt:   s.CreatedAt.UTC(),
	}
}

func toPropertyResponse(v ports.PropertyView) propertyResponse {
	p := v.Property
	return propertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Rent:        p.Rent,
		RentDisplay: domain.FormatRupees(p.Rent),
		Status:      string(p.Status),
		TenantID:    p.TenantID,
		Tenant:      v.TenantName,
	}
}

func toPropertyForm(d domain.PropertyDraft) propertyFormResponse {
	return propertyFormResponse{Name: d.Name, Address: d.Address, Rent: d.Rent, Status: string(d.Status)}
}

func toTenantResponse(v ports.TenantView) tenantResponse {
	t := v.Tenant
	return tenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		Email:       t.Email,
		Phone:       t.Phone,
		PropertyID:  t.PropertyID,
		Property:    v.PropertyName,
		LeaseStart:  t.LeaseStart,
		LeaseEnd:    t.LeaseEnd,
		Rent:        t.Rent,
		RentDisplay: domain.FormatRupees(t.Rent),
		Status:      string(t.Status),
	}
}

func toTenantForm(d domain.TenantDraft) tenantFormResponse {
	return tenantFormResponse{
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		PropertyID: d.PropertyID,
		LeaseStart: d.LeaseStart,
		LeaseEnd:   d.LeaseEnd,
		Rent:       d.Rent,
		Status:     string(d.Status),
	}
}

func toPaymentResponses(records []*domain.PaymentRecord) []paymentResponse {
	out := make([]paymentResponse, 0, len(records))
	for _, r := range records {
		out = append(out, paymentResponse{
			ID:            r.ID,
			Tenant:        r.Tenant,
			Property:      r.Property,
			Amount:        r.Amount,
			AmountDisplay: domain.FormatRupees(r.Amount),
			Date:          r.Date,
			DueDate:       r.DueDate,
			Status:        string(r.Status),
			Method:        r.Method,
			Late:          r.Late,
		})
	}
	return out
}

// toSummaryResponse renders the summary cards, which show amounts in lakhs.
func toSummaryResponse(s domain.PaymentSummary) paymentSummaryResponse {
	return paymentSummaryResponse{
		Collected:        s.Collected,
		CollectedDisplay: domain.FormatLakhs(s.Collected),
		Pending:          s.Pending,
		PendingDisplay:   domain.FormatLakhs(s.Pending),
		Overdue:          s.Overdue,
		OverdueDisplay:   domain.FormatLakhs(s.Overdue),
	}
}

func toReceiptResponse(r *domain.PaymentReceipt, replayed bool) receiptResponse {
	return receiptResponse{
		ID:            r.ID,
		PaymentID:     r.PaymentID,
		Amount:        r.Amount,
		AmountDisplay: domain.FormatRupees(r.Amount),
		Method:        string(r.Method),
		ProcessedAt:   r.ProcessedAt.UTC(),
		Message:       r.Message,
		Replayed:      replayed,
	}
}

func toWelcomeResponse(v *ports.WelcomeView) welcomeResponse {
	resp := welcomeResponse{
		DisplayName: v.DisplayName,
		UserType:    string(v.UserType),
		ContinueTo:  v.Dashboard,
		Features:    make([]featureResponse, 0, len(v.Features)),
		Stats:       make([]statResponse, 0, len(v.Stats)),
	}
	for _, f := range v.Features {
		resp.Features = append(resp.Features, featureResponse{Title: f.Title, Description: f.Description})
	}
	for _, s := range v.Stats {
		resp.Stats = append(resp.Stats, statResponse{Label: s.Label, Value: s.Value})
	}
	return resp
}

func toAdminDashboardResponse(d *ports.AdminDashboard) adminDashboardResponse {
	return adminDashboardResponse{
		DisplayName: d.DisplayName,
		Stats: adminStatsResponse{
			TotalProperties:       d.Stats.TotalProperties,
			TotalTenants:          d.Stats.TotalTenants,
			MonthlyRevenue:        d.Stats.MonthlyRevenue,
			MonthlyRevenueDisplay: domain.FormatLakhs(d.Stats.MonthlyRevenue),
			OccupancyRate:         d.Stats.OccupancyRate,
		},
		RecentPayments: toPaymentResponses(d.RecentPayments),
	}
}

func toTenantDashboardResponse(d *ports.TenantDashboard) tenantDashboardResponse {
	return tenantDashboardResponse{
		DisplayName: d.DisplayName,
		Demo:        d.Demo,
		Lease: leaseResponse{
			Property:    d.Lease.PropertyName,
			Address:     d.Lease.Address,
			Rent:        d.Lease.Rent,
			RentDisplay: domain.FormatRupees(d.Lease.Rent),
			LeaseStart:  d.Lease.LeaseStart,
			LeaseEnd:    d.Lease.LeaseEnd,
		},
		NextPaymentDue: d.NextPaymentDue,
		Balance:        d.Balance,
		BalanceDisplay: domain.FormatRupees(d.Balance),
		Payments:       toPaymentResponses(d.Payments),
	}
}
