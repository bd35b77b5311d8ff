package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// TenantRepository implements ports.TenantRepository using MongoDB.
type TenantRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewTenantRepository(db *mongo.Database) *TenantRepository {
	return &TenantRepository{db: db, col: db.Collection(collectionTenants)}
}

func (r *TenantRepository) List(ctx context.Context) ([]*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out, err := findAll[domain.Tenant](ctx, r.col, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return out, nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	return r.findOne(ctx, bson.M{"_id": id}, options.FindOne())
}

// FindByEmail returns the earliest tenant whose email matches, ignoring case.
func (r *TenantRepository) FindByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	opts := options.FindOne().SetCollation(caseInsensitive).SetSort(byInsertion)
	return r.findOne(ctx, bson.M{"email": email}, opts)
}

func (r *TenantRepository) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out, err := findAll[domain.Tenant](ctx, r.col, bson.M{"property_id": propertyID})
	if err != nil {
		return nil, fmt.Errorf("list tenants by property: %w", err)
	}
	return out, nil
}

func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionTenants)
	if err != nil {
		return nil, err
	}
	doc := *t
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert tenant: %w", err)
	}
	return &doc, nil
}

func (r *TenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

func (r *TenantRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

func (r *TenantRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tenant
	if err := r.col.FindOne(ctx, filter, opts).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("find tenant: %w", err)
	}
	return &t, nil
}
