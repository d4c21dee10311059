package orderRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wavecrest/database"
	"wavecrest/models"
)

// OrderRepository records submitted apparel orders for auditing.
type OrderRepository interface {
	Create(ctx context.Context, record *models.OrderRecord) error
	GetByUpstreamID(ctx context.Context, upstreamID string) (*models.OrderRecord, error)
	ListRecent(ctx context.Context, limit int64) ([]models.OrderRecord, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns an OrderRepository backed by MongoDB.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}

// Create inserts an order audit row.
func (r *mongoOrderRepo) Create(ctx context.Context, record *models.OrderRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, record)
	return err
}

// GetByUpstreamID returns the audit row for an upstream order id.
func (r *mongoOrderRepo) GetByUpstreamID(ctx context.Context, upstreamID string) (*models.OrderRecord, error) {
	var record models.OrderRecord
	if err := r.coll.FindOne(ctx, bson.M{"upstream_order_id": upstreamID}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListRecent returns the most recently submitted orders.
func (r *mongoOrderRepo) ListRecent(ctx context.Context, limit int64) ([]models.OrderRecord, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.OrderRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
