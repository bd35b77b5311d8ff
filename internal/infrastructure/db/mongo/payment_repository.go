package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propelrent/rentwise/internal/core/domain"
)

// PaymentRepository implements ports.PaymentRepository using MongoDB.
// Records are append-only.
type PaymentRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{db: db, col: db.Collection(collectionPayments)}
}

func (r *PaymentRepository) List(ctx context.Context) ([]*domain.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out, err := findAll[domain.PaymentRecord](ctx, r.col, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return out, nil
}

func (r *PaymentRepository) Create(ctx context.Context, rec *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionPayments)
	if err != nil {
		return nil, err
	}
	doc := *rec
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return &doc, nil
}
