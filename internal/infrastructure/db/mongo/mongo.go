package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

const (
	collectionProperties = "properties"
	collectionTenants    = "tenants"
	collectionPayments   = "payments"
	collectionCounters   = "counters"
)

// EnsureIndexes creates the secondary indexes the repositories query by.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tenantIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetCollation(caseInsensitive),
		},
		{Keys: bson.D{{Key: "property_id", Value: 1}}},
	}
	if _, err := db.Collection(collectionTenants).Indexes().CreateMany(ctx, tenantIndexes); err != nil {
		return fmt.Errorf("tenant indexes: %w", err)
	}

	paymentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tenant_id", Value: 1}}},
	}
	if _, err := db.Collection(collectionPayments).Indexes().CreateMany(ctx, paymentIndexes); err != nil {
		return fmt.Errorf("payment indexes: %w", err)
	}
	return nil
}

// caseInsensitive compares strings ignoring case (strength 2).
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// byInsertion sorts documents by their sequential _id, i.e. insertion order.
var byInsertion = bson.D{{Key: "_id", Value: 1}}

// nextID atomically increments and returns the named counter. IDs are never
// reused, even after deletes.
func nextID(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := db.Collection(collectionCounters).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return doc.Seq, nil
}

// findAll decodes every document matching filter in insertion order.
func findAll[T any](ctx context.Context, col *mongo.Collection, filter any) ([]*T, error) {
	cur, err := col.Find(ctx, filter, options.Find().SetSort(byInsertion))
	if err != nil {
		return nil, err
	}
	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
