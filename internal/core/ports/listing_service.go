package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// PropertyView is a property with its occupant's name resolved.
type PropertyView struct {
	Property   domain.Property
	TenantName *string
}

// PropertyService implements add/edit/delete over the property list.
type PropertyService interface {
	List(ctx context.Context) ([]PropertyView, error)
	Get(ctx context.Context, id int64) (*PropertyView, error)
	Create(ctx context.Context, draft domain.PropertyDraft) (*PropertyView, error)
	Update(ctx context.Context, id int64, draft domain.PropertyDraft) (*PropertyView, error)
	Delete(ctx context.Context, id int64) error
}

// TenantView is a tenant with the leased property's name resolved.
type TenantView struct {
	Tenant       domain.Tenant
	PropertyName string
}

// TenantService implements add/edit/delete over the tenant list.
type TenantService interface {
	List(ctx context.Context) ([]TenantView, error)
	Get(ctx context.Context, id int64) (*TenantView, error)
	Create(ctx context.Context, draft domain.TenantDraft) (*TenantView, error)
	Update(ctx context.Context, id int64, draft domain.TenantDraft) (*TenantView, error)
	Delete(ctx context.Context, id int64) error
}
