package memory

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

type PropertyRepository struct {
	store *orderedStore[domain.Property]
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{store: newOrderedStore(
		func(p *domain.Property) int64 { return p.ID },
		func(p *domain.Property, id int64) { p.ID = id },
	)}
}

func (r *PropertyRepository) List(_ context.Context) ([]*domain.Property, error) {
	return r.store.list(), nil
}

func (r *PropertyRepository) FindByID(_ context.Context, id int64) (*domain.Property, error) {
	p, ok := r.store.find(id)
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return p, nil
}

func (r *PropertyRepository) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	return r.store.add(clonePropertyFields(p)), nil
}

func (r *PropertyRepository) Update(_ context.Context, p *domain.Property) error {
	if !r.store.replace(clonePropertyFields(p)) {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(_ context.Context, id int64) error {
	if !r.store.remove(id) {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// clonePropertyFields copies p, including the pointed-to tenant ID.
func clonePropertyFields(p *domain.Property) domain.Property {
	c := *p
	if p.TenantID != nil {
		id := *p.TenantID
		c.TenantID = &id
	}
	return c
}
