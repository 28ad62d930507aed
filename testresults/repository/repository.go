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

	"github.com/wellspring-health/clinic/testresults"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (testresults.Repository, error) {
	repo := &Repository{
		collection: db.Collection(testresults.CollectionName),
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
				{Key: "resultDate", Value: -1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("RecentTestResultsByPatient"),
		},
	})
	return err
}

func (r *Repository) Create(ctx context.Context, create *testresults.TestResult) (*testresults.TestResult, error) {
	res, err := r.collection.InsertOne(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("error creating test result: %w", err)
	}

	result := &testresults.TestResult{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": res.InsertedID.(primitive.ObjectID)}).Decode(result); err != nil {
		return nil, fmt.Errorf("error fetching test result: %w", err)
	}
	return result, nil
}

func (r *Repository) ListRecent(ctx context.Context, patientId string, limit int) ([]testresults.TestResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "resultDate", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"patientId": patientId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing test results: %w", err)
	}

	result := make([]testresults.TestResult, 0, limit)
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding test results: %w", err)
	}
	return result, nil
}
