package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"
	"flightcast-service/pkg/logger"
	"flightcast-service/pkg/pseal"
)

const configDocID = "app_config"

// MongoConfigRepository implements ConfigRepository. The config value is
// persisted as a sealed pseal envelope.
type MongoConfigRepository struct {
	collection *mongo.Collection
	sealer     *pseal.Sealer
	logger     logger.Logger
}

type configDoc struct {
	ID   string `bson:"_id"`
	Blob []byte `bson:"blob"`
}

// NewMongoConfigRepository creates a new config repository
func NewMongoConfigRepository(db *mongo.Database, sealer *pseal.Sealer, logger logger.Logger) repository.ConfigRepository {
	return &MongoConfigRepository{
		collection: db.Collection("app_config"),
		sealer:     sealer,
		logger:     logger,
	}
}

// Get returns the last-saved config. Unreadable blobs fall back to the
// documented default instead of failing.
func (r *MongoConfigRepository) Get(ctx context.Context) (entity.AppConfig, error) {
	var doc configDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": configDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.DefaultAppConfig(), nil
	}
	if err != nil {
		return entity.AppConfig{}, err
	}

	plaintext, err := r.sealer.Open(doc.Blob)
	if err != nil {
		r.logger.Warn("Stored config blob unreadable, using defaults", "error", err)
		return entity.DefaultAppConfig(), nil
	}

	var config entity.AppConfig
	if err := json.Unmarshal(plaintext, &config); err != nil {
		r.logger.Warn("Stored config payload unreadable, using defaults", "error", err)
		return entity.DefaultAppConfig(), nil
	}
	return config, nil
}

// Save overwrites the whole config value, last write wins
func (r *MongoConfigRepository) Save(ctx context.Context, config entity.AppConfig) error {
	plaintext, err := json.Marshal(config)
	if err != nil {
		return err
	}
	blob, err := r.sealer.Seal(plaintext)
	if err != nil {
		return err
	}

	opts := options.Update().SetUpsert(true)
	_, err = r.collection.UpdateOne(
		ctx,
		bson.M{"_id": configDocID},
		bson.M{"$set": bson.M{"blob": blob}},
		opts,
	)
	return err
}
