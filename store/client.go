package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

func NewClient(host string) (*mongo.Client, error) {
	ctx, cancel := NewDbContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(host))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mongo: %w", err)
	}

	return client, nil
}

// NewManagedClient creates a client from the configuration and disconnects it when the application stops
func NewManagedClient(cfg *Config, lifecycle fx.Lifecycle) (*mongo.Client, error) {
	client, err := NewClient(cfg.GetConnectionString())
	if err != nil {
		return nil, err
	}

	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

func Ping(ctx context.Context, client *mongo.Client) error {
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("unable to ping mongo: %w", err)
	}
	return nil
}
