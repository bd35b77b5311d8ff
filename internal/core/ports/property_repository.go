package ports

import (
	"context"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// PropertyRepository keeps properties as an ordered sequence.
// Create appends at the end and assigns a fresh, never reused ID.
type PropertyRepository interface {
	List(ctx context.Context) ([]*domain.Property, error)
	FindByID(ctx context.Context, id int64) (*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	// Update replaces the stored record with the same ID, in place.
	// Returns domain.ErrPropertyNotFound without side effects when missing.
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int64) error
}
