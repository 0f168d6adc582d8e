package repository

import (
	"context"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItineraryRepository implements ItineraryRepository
type MongoItineraryRepository struct {
	collection *mongo.Collection
}

// NewMongoItineraryRepository creates a new itinerary history repository
func NewMongoItineraryRepository(db *mongo.Database) repository.ItineraryRepository {
	collection := db.Collection("itineraries")

	ctx := context.Background()

	// Unique index on runId
	runIDIndex := mongo.IndexModel{
		Keys:    bson.M{"runId": 1},
		Options: options.Index().SetUnique(true),
	}

	// Index on createdAt for recent history
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{runIDIndex, createdAtIndex})

	return &MongoItineraryRepository{
		collection: collection,
	}
}

// Save inserts a history record
func (r *MongoItineraryRepository) Save(ctx context.Context, record *entity.ItineraryRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// FindByRunID finds a history record by pipeline run id
func (r *MongoItineraryRepository) FindByRunID(ctx context.Context, runID string) (*entity.ItineraryRecord, error) {
	var record entity.ItineraryRecord
	err := r.collection.FindOne(ctx, bson.M{"runId": runID}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindRecent returns the newest records first
func (r *MongoItineraryRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ItineraryRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*entity.ItineraryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
