package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

const recentPaymentsLimit = 3

// demoLease is shown to tenants whose email matches no tenant record.
var demoLease = ports.TenantLease{
	PropertyName: "Sunset Apartments 2A",
	Address:      "123 Main St, Downtown",
	Rent:         85000,
	LeaseStart:   "2024-01-01",
	LeaseEnd:     "2024-12-31",
}

func demoPayments() []*domain.PaymentRecord {
	paid := func(id int64, date, due, method string) *domain.PaymentRecord {
		return &domain.PaymentRecord{
			ID: id, Property: demoLease.PropertyName, Amount: demoLease.Rent,
			Date: &date, DueDate: due, Status: domain.PaymentPaid, Method: &method,
		}
	}
	return []*domain.PaymentRecord{
		paid(1, "2024-01-15", "2024-01-01", "Bank Transfer"),
		paid(2, "2023-12-15", "2023-12-01", "Credit Card"),
		paid(3, "2023-11-15", "2023-11-01", "Bank Transfer"),
	}
}

var (
	adminFeatures = []ports.Feature{
		{Title: "Property Management", Description: "Manage all your properties in one place"},
		{Title: "Tenant Management", Description: "Track tenant information and lease details"},
		{Title: "Analytics & Reports", Description: "View revenue, occupancy rates, and insights"},
		{Title: "Payment Tracking", Description: "Monitor all rent payments and transactions"},
	}
	tenantFeatures = []ports.Feature{
		{Title: "Property Details", Description: "View your rental property information"},
		{Title: "Easy Payments", Description: "Pay your rent online securely"},
		{Title: "Payment History", Description: "Track all your payment records"},
		{Title: "Account Status", Description: "Monitor your account balance and status"},
	}
)

// DashboardService composes dashboard views from the repositories.
type DashboardService struct {
	properties ports.PropertyRepository
	tenants    ports.TenantRepository
	payments   ports.PaymentRepository
	log        zerolog.Logger
}

func NewDashboardService(properties ports.PropertyRepository, tenants ports.TenantRepository, payments ports.PaymentRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{properties: properties, tenants: tenants, payments: payments, log: log}
}

// Welcome builds the post-login interstitial for s.
func (s *DashboardService) Welcome(ctx context.Context, sess *domain.Session) (*ports.WelcomeView, error) {
	v := &ports.WelcomeView{
		DisplayName: domain.DisplayName(sess.Email),
		UserType:    sess.Type,
		Dashboard:   sess.DashboardTitle(),
	}

	if sess.Type == domain.UserAdmin {
		admin, err := s.Admin(ctx, sess)
		if err != nil {
			return nil, err
		}
		v.Features = adminFeatures
		v.Stats = []ports.Stat{
			{Label: "Properties", Value: fmt.Sprint(admin.Stats.TotalProperties)},
			{Label: "Tenants", Value: fmt.Sprint(admin.Stats.TotalTenants)},
			{Label: "Monthly Revenue", Value: domain.FormatLakhs(admin.Stats.MonthlyRevenue)},
		}
		return v, nil
	}

	tenant, err := s.Tenant(ctx, sess)
	if err != nil {
		return nil, err
	}
	v.Features = tenantFeatures
	v.Stats = []ports.Stat{
		{Label: "Monthly Rent", Value: domain.FormatRupees(tenant.Lease.Rent)},
		{Label: "Next Payment", Value: tenant.NextPaymentDue},
		{Label: "Balance", Value: domain.FormatRupees(tenant.Balance)},
	}
	return v, nil
}

// Admin computes overview stats from the current listings.
func (s *DashboardService) Admin(ctx context.Context, sess *domain.Session) (*ports.AdminDashboard, error) {
	props, err := s.properties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	stats := ports.AdminStats{TotalProperties: len(props), TotalTenants: len(tenants)}
	occupied := 0
	for _, p := range props {
		if p.Status == domain.PropertyOccupied {
			occupied++
			stats.MonthlyRevenue += p.Rent
		}
	}
	if len(props) > 0 {
		stats.OccupancyRate = occupied * 100 / len(props)
	}

	return &ports.AdminDashboard{
		DisplayName:    domain.DisplayName(sess.Email),
		Stats:          stats,
		RecentPayments: recentPayments(payments, recentPaymentsLimit),
	}, nil
}

// Tenant builds the tenant portal for the tenant whose email matches the
// session. Unmatched emails get the demo lease.
func (s *DashboardService) Tenant(ctx context.Context, sess *domain.Session) (*ports.TenantDashboard, error) {
	all, err := s.payments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("tenant dashboard: %w", err)
	}

	d := &ports.TenantDashboard{DisplayName: domain.DisplayName(sess.Email)}

	t, err := s.tenants.FindByEmail(ctx, sess.Email)
	if err != nil {
		d.Demo = true
		d.Lease = demoLease
		d.Payments = append(ownPayments(all, nil, sess.Email), demoPayments()...)
	} else {
		d.Lease = ports.TenantLease{Rent: t.Rent, LeaseStart: t.LeaseStart, LeaseEnd: t.LeaseEnd}
		p, err := s.properties.FindByID(ctx, t.PropertyID)
		if err != nil {
			s.log.Warn().Err(err).Int64("tenant_id", t.ID).Msg("resolve leased property")
		} else {
			d.Lease.PropertyName = p.Name
			d.Lease.Address = p.Address
		}
		d.Payments = ownPayments(all, t, sess.Email)
	}

	sortByRecency(d.Payments)
	for _, p := range d.Payments {
		if p.Status == domain.PaymentPending || p.Status == domain.PaymentOverdue {
			d.Balance += p.Amount
		}
	}
	d.NextPaymentDue = nextDue(d.Payments, d.Lease.LeaseStart)
	return d, nil
}

// ownPayments selects records linked to t by ID or name, or recorded under email.
func ownPayments(all []*domain.PaymentRecord, t *domain.Tenant, email string) []*domain.PaymentRecord {
	var out []*domain.PaymentRecord
	for _, r := range all {
		switch {
		case strings.EqualFold(r.Tenant, email):
		case t != nil && r.TenantID != nil && *r.TenantID == t.ID:
		case t != nil && r.TenantID == nil && strings.EqualFold(r.Tenant, t.Name):
		default:
			continue
		}
		out = append(out, r)
	}
	return out
}

// nextDue is the first of the month after the latest due date, or after the
// lease start when there is no payment yet.
func nextDue(payments []*domain.PaymentRecord, leaseStart string) string {
	var latest time.Time
	for _, p := range payments {
		if d, err := time.Parse(domain.DateLayout, p.DueDate); err == nil && d.After(latest) {
			latest = d
		}
	}
	if latest.IsZero() {
		d, err := time.Parse(domain.DateLayout, leaseStart)
		if err != nil {
			return ""
		}
		latest = d
	}
	return firstOfMonth(latest).AddDate(0, 1, 0).Format(domain.DateLayout)
}

func recentPayments(all []*domain.PaymentRecord, limit int) []*domain.PaymentRecord {
	sorted := make([]*domain.PaymentRecord, len(all))
	copy(sorted, all)
	sortByRecency(sorted)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// sortByRecency orders newest first by payment date, falling back to due date.
func sortByRecency(records []*domain.PaymentRecord) {
	key := func(r *domain.PaymentRecord) string {
		if r.Date != nil {
			return *r.Date
		}
		return r.DueDate
	}
	sort.SliceStable(records, func(i, j int) bool {
		return key(records[i]) > key(records[j])
	})
}
