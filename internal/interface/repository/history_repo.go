package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"
)

// MongoHistoryRepository implements HistoryRepository
type MongoHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoHistoryRepository creates a new history repository
func NewMongoHistoryRepository(db *mongo.Database) repository.HistoryRepository {
	collection := db.Collection("history_items")

	// Index on timestamp for ordering and eviction
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"timestamp": -1},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoHistoryRepository{collection: collection}
}

// Append inserts the item and evicts everything beyond the capacity,
// oldest first.
func (r *MongoHistoryRepository) Append(ctx context.Context, item *entity.HistoryItem) error {
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return err
	}

	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetSkip(int64(entity.MaxHistoryItems)).
		SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}

	var stale []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &stale); err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	ids := make([]string, len(stale))
	for i, doc := range stale {
		ids[i] = doc.ID
	}
	_, err = r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

// List returns the stored items, most recent first
func (r *MongoHistoryRepository) List(ctx context.Context) ([]*entity.HistoryItem, error) {
	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(int64(entity.MaxHistoryItems))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.HistoryItem, 0, entity.MaxHistoryItems)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear removes all stored items
func (r *MongoHistoryRepository) Clear(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
