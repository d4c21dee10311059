package blockedRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wavecrest/database"
	"wavecrest/models"
)

// BlockedDateRepository defines access to the blocked-dates set.
type BlockedDateRepository interface {
	ListDates(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]models.BlockedDate, error)
	Create(ctx context.Context, block *models.BlockedDate) error
	Delete(ctx context.Context, blockID string) error
}

type mongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo returns a BlockedDateRepository backed by MongoDB.
func NewMongoBlockedRepo() BlockedDateRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBlockedRepo{
		coll: db.Collection("blocked_dates"),
	}
}

// ListDates returns just the blocked "YYYY-MM-DD" strings, deduplicated.
func (r *mongoBlockedRepo) ListDates(ctx context.Context) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, "date", bson.M{})
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			dates = append(dates, s)
		}
	}
	return dates, nil
}

// List returns all blocked-date rows.
func (r *mongoBlockedRepo) List(ctx context.Context) ([]models.BlockedDate, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedDate
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// Create inserts a blocked date.
func (r *mongoBlockedRepo) Create(ctx context.Context, block *models.BlockedDate) error {
	if block.BlockID == "" {
		block.BlockID = uuid.New().String()
	}
	block.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, block)
	return err
}

// Delete removes a blocked date by its block id.
func (r *mongoBlockedRepo) Delete(ctx context.Context, blockID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"block_id": blockID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("blocked date not found")
	}
	return nil
}
