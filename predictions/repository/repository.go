package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/wellspring-health/clinic/predictions"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (predictions.Repository, error) {
	repo := &Repository{
		collection: db.Collection(predictions.CollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type Repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (r *Repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patientId", Value: 1},
				{Key: "createdTime", Value: -1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("PredictionsByPatient"),
		},
	})
	return err
}

func (r *Repository) Create(ctx context.Context, create *predictions.Prediction) (*predictions.Prediction, error) {
	res, err := r.collection.InsertOne(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("error creating prediction: %w", err)
	}

	result := &predictions.Prediction{}
	err = r.collection.FindOne(ctx, bson.M{"_id": res.InsertedID.(primitive.ObjectID)}).Decode(result)
	if err == mongo.ErrNoDocuments {
		return nil, predictions.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching prediction: %w", err)
	}
	return result, nil
}

func (r *Repository) ListByPatient(ctx context.Context, patientId string) ([]predictions.Prediction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdTime", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"patientId": patientId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing predictions: %w", err)
	}

	result := make([]predictions.Prediction, 0)
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding predictions: %w", err)
	}
	return result, nil
}
