package outbox

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrEventNotFound = fmt.Errorf("outbox event not found")

type repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(CollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdTime", Value: 1}},
			Options: options.Index().SetName("CreatedTime"),
		},
		{
			Keys:    bson.D{{Key: "eventType", Value: 1}},
			Options: options.Index().SetName("EventType"),
		},
		{
			Keys: bson.D{
				{Key: "publishedTime", Value: 1},
				{Key: "createdTime", Value: 1},
			},
			Options: options.Index().SetName("PendingEvents"),
		},
	})
	return err
}

func (r *repository) Create(ctx context.Context, event Event) error {
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("error inserting outbox event: %w", err)
	}
	return nil
}

func (r *repository) ListPending(ctx context.Context, limit int) ([]Event, error) {
	selector := bson.M{"publishedTime": bson.M{"$exists": false}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdTime", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing pending outbox events: %w", err)
	}

	events := make([]Event, 0, limit)
	if err = cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding outbox events: %w", err)
	}
	return events, nil
}

func (r *repository) MarkPublished(ctx context.Context, id primitive.ObjectID, publishedTime time.Time) error {
	selector := bson.M{
		"_id":           id,
		"publishedTime": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{"publishedTime": publishedTime}}

	res, err := r.collection.UpdateOne(ctx, selector, update)
	if err != nil {
		return fmt.Errorf("error marking outbox event as published: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}
