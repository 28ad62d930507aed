package repository

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

	"github.com/wellspring-health/clinic/appointments"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (appointments.Repository, error) {
	repo := &Repository{
		collection: db.Collection(appointments.CollectionName),
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
				{Key: "status", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("UpcomingAppointmentsByPatient"),
		},
		{
			Keys: bson.D{
				{Key: "doctorId", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("AppointmentsByDoctor"),
		},
	})
	return err
}

func (r *Repository) Create(ctx context.Context, create *appointments.Appointment) (*appointments.Appointment, error) {
	if create.CreatedTime.IsZero() {
		create.CreatedTime = time.Now().UTC()
	}

	res, err := r.collection.InsertOne(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("error creating appointment: %w", err)
	}

	result := &appointments.Appointment{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": res.InsertedID.(primitive.ObjectID)}).Decode(result); err != nil {
		return nil, fmt.Errorf("error fetching appointment: %w", err)
	}
	return result, nil
}

func (r *Repository) ListUpcoming(ctx context.Context, patientId string, now time.Time, limit int) ([]appointments.Appointment, error) {
	selector := bson.M{
		"patientId": patientId,
		"date":      bson.M{"$gt": now},
		"status":    bson.M{"$in": appointments.ActiveStatuses},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, selector, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}

	result := make([]appointments.Appointment, 0, limit)
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return result, nil
}
