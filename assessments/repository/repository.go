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

	"github.com/wellspring-health/clinic/assessments"
	"github.com/wellspring-health/clinic/store"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (assessments.Repository, error) {
	repo := &Repository{
		collection: db.Collection(assessments.CollectionName),
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
				SetName("AssessmentsByPatient"),
		},
		{
			Keys: bson.D{
				{Key: "doctorId", Value: 1},
				{Key: "createdTime", Value: -1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("AssessmentsByDoctor"),
		},
	})
	return err
}

func (r *Repository) Create(ctx context.Context, create *assessments.Assessment) (*assessments.Assessment, error) {
	res, err := r.collection.InsertOne(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("error creating assessment: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.getOne(ctx, bson.M{"_id": id})
}

func (r *Repository) Get(ctx context.Context, id string) (*assessments.Assessment, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, assessments.ErrNotFound
	}
	return r.getOne(ctx, bson.M{"_id": objId})
}

func (r *Repository) ListByPatient(ctx context.Context, patientId string, pagination store.Pagination) ([]assessments.Assessment, error) {
	newest := store.Sort{Attribute: "createdTime"}
	opts := options.Find().
		SetSort(bson.D{{Key: newest.Attribute, Value: newest.Order()}, {Key: "_id", Value: newest.Order()}}).
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Offset))

	cursor, err := r.collection.Find(ctx, bson.M{"patientId": patientId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing assessments: %w", err)
	}

	result := make([]assessments.Assessment, 0)
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding assessments: %w", err)
	}
	return result, nil
}

func (r *Repository) getOne(ctx context.Context, selector bson.M) (*assessments.Assessment, error) {
	result := &assessments.Assessment{}
	err := r.collection.FindOne(ctx, selector).Decode(result)
	if err == mongo.ErrNoDocuments {
		return nil, assessments.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching assessment: %w", err)
	}

	return result, nil
}
