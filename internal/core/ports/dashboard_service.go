package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// Stat is a labelled figure on a dashboard card.
type Stat struct {
	Label string
	Value string
}

// Feature is a static feature card on the welcome screen.
type Feature struct {
	Title       string
	Description string
}

// WelcomeView is the interstitial shown after login.
type WelcomeView struct {
	DisplayName string
	UserType    domain.UserType
	Dashboard   string
	Features    []Feature
	Stats       []Stat
}

// AdminStats are the figures on the admin overview tab.
type AdminStats struct {
	TotalProperties int
	TotalTenants    int
	MonthlyRevenue  int64
	OccupancyRate   int
}

// AdminDashboard is the admin overview.
type AdminDashboard struct {
	DisplayName    string
	Stats          AdminStats
	RecentPayments []*domain.PaymentRecord
}

// TenantLease describes the tenant's rented property.
type TenantLease struct {
	PropertyName string
	Address      string
	Rent         int64
	LeaseStart   string
	LeaseEnd     string
}

// TenantDashboard is the tenant portal snapshot.
type TenantDashboard struct {
	DisplayName    string
	Lease          TenantLease
	Payments       []*domain.PaymentRecord
	NextPaymentDue string
	Balance        int64
	// Demo is true when no tenant record matched and the sample snapshot is shown.
	Demo bool
}

// DashboardService composes the read-only dashboard views.
type DashboardService interface {
	Welcome(ctx context.Context, s *domain.Session) (*WelcomeView, error)
	Admin(ctx context.Context, s *domain.Session) (*AdminDashboard, error)
	Tenant(ctx context.Context, s *domain.Session) (*TenantDashboard, error)
}
