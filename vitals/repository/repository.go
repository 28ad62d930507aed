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

	"github.com/wellspring-health/clinic/vitals"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (vitals.Repository, error) {
	repo := &Repository{
		collection: db.Collection(vitals.CollectionName),
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
				{Key: "type", Value: 1},
				{Key: "recordedTime", Value: -1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("LatestVitalsByPatient"),
		},
	})
	return err
}

func (r *Repository) Create(ctx context.Context, create *vitals.Vitals) (*vitals.Vitals, error) {
	res, err := r.collection.InsertOne(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("error creating vitals: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.getOne(ctx, bson.M{"_id": id}, options.FindOne())
}

func (r *Repository) GetLatest(ctx context.Context, patientId string, vitalsType vitals.Type) (*vitals.Vitals, error) {
	selector := bson.M{
		"patientId": patientId,
		"type":      vitalsType,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "recordedTime", Value: -1}, {Key: "_id", Value: -1}})
	return r.getOne(ctx, selector, opts)
}

func (r *Repository) getOne(ctx context.Context, selector bson.M, opts *options.FindOneOptions) (*vitals.Vitals, error) {
	result := &vitals.Vitals{}
	err := r.collection.FindOne(ctx, selector, opts).Decode(result)
	if err == mongo.ErrNoDocuments {
		return nil, vitals.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching vitals: %w", err)
	}

	return result, nil
}
