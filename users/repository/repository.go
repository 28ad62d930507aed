package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/wellspring-health/clinic/store"
	"github.com/wellspring-health/clinic/users"
)

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (users.Repository, error) {
	repo := &Repository{
		collection: db.Collection(users.CollectionName),
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
				{Key: "userId", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetUnique(true).
				SetName("UniqueUserId"),
		},
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetUnique(true).
				SetName("UniqueEmail"),
		},
		{
			Keys: bson.D{
				{Key: "role", Value: 1},
			},
			Options: options.Index().
				SetBackground(true).
				SetName("UsersByRole"),
		},
	})
	return err
}

func (r *Repository) Create(ctx context.Context, create *users.User) (*users.User, error) {
	if create.UserId == "" {
		create.UserId = uuid.NewString()
	}
	create.Email = strings.ToLower(create.Email)
	create.CreatedTime = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, create); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, users.ErrDuplicate
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return r.Get(ctx, create.UserId)
}

func (r *Repository) Get(ctx context.Context, userId string) (*users.User, error) {
	result := &users.User{}
	err := r.collection.FindOne(ctx, bson.M{"userId": userId}).Decode(result)
	if err == mongo.ErrNoDocuments {
		return nil, users.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return result, nil
}

func (r *Repository) ListByIds(ctx context.Context, userIds []string) ([]users.User, error) {
	result := make([]users.User, 0, len(userIds))
	if len(userIds) == 0 {
		return result, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": bson.M{"$in": userIds}})
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	if err = cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return result, nil
}
