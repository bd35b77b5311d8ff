package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// TenantRepository keeps tenants as an ordered sequence.
type TenantRepository interface {
	List(ctx context.Context) ([]*domain.Tenant, error)
	FindByID(ctx context.Context, id int64) (*domain.Tenant, error)
	FindByEmail(ctx context.Context, email string) (*domain.Tenant, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Tenant, error)
	Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	Update(ctx context.Context, t *domain.Tenant) error
	Delete(ctx context.Context, id int64) error
}
