package memory

import (
	"context"
	"strings"

	"github.com/propelrent/rentwise/internal/core/domain"
)

type TenantRepository struct {
	store *orderedStore[domain.Tenant]
}

func NewTenantRepository() *TenantRepository {
	return &TenantRepository{store: newOrderedStore(
		func(t *domain.Tenant) int64 { return t.ID },
		func(t *domain.Tenant, id int64) { t.ID = id },
	)}
}

func (r *TenantRepository) List(_ context.Context) ([]*domain.Tenant, error) {
	return r.store.list(), nil
}

func (r *TenantRepository) FindByID(_ context.Context, id int64) (*domain.Tenant, error) {
	t, ok := r.store.find(id)
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	return t, nil
}

// FindByEmail matches case-insensitively and returns the first tenant in list order.
func (r *TenantRepository) FindByEmail(_ context.Context, email string) (*domain.Tenant, error) {
	matches := r.store.filter(func(t *domain.Tenant) bool {
		return strings.EqualFold(t.Email, email)
	})
	if len(matches) == 0 {
		return nil, domain.ErrTenantNotFound
	}
	return matches[0], nil
}

func (r *TenantRepository) ListByProperty(_ context.Context, propertyID int64) ([]*domain.Tenant, error) {
	return r.store.filter(func(t *domain.Tenant) bool {
		return t.PropertyID == propertyID
	}), nil
}

func (r *TenantRepository) Create(_ context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	return r.store.add(*t), nil
}

func (r *TenantRepository) Update(_ context.Context, t *domain.Tenant) error {
	if !r.store.replace(*t) {
		return domain.ErrTenantNotFound
	}
	return nil
}

func (r *TenantRepository) Delete(_ context.Context, id int64) error {
	if !r.store.remove(id) {
		return domain.ErrTenantNotFound
	}
	return nil
}
