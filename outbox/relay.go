package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

type RelayConfig struct {
	BatchSize int `envconfig:"CLINIC_OUTBOX_RELAY_BATCH_SIZE" default:"100"`
}

func NewRelayConfig() (RelayConfig, error) {
	cfg := RelayConfig{}
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// Relay moves pending outbox events to the notification transport
type Relay struct {
	repository Repository
	publisher  Publisher
	logger     *zap.SugaredLogger
	batchSize  int
	now        func() time.Time
}

func NewRelay(repository Repository, publisher Publisher, cfg RelayConfig, logger *zap.SugaredLogger) *Relay {
	return &Relay{
		repository: repository,
		publisher:  publisher,
		logger:     logger,
		batchSize:  cfg.BatchSize,
		now:        time.Now,
	}
}

// RelayPending publishes pending events in batches until none are left and returns the
// number of published events
func (r *Relay) RelayPending(ctx context.Context) (int, error) {
	published := 0
	for {
		events, err := r.repository.ListPending(ctx, r.batchSize)
		if err != nil {
			return published, err
		}
		if len(events) == 0 {
			return published, nil
		}

		if err := r.publisher.Publish(ctx, events); err != nil {
			return published, fmt.Errorf("unable to publish outbox events: %w", err)
		}

		publishedTime := r.now().UTC()
		for _, event := range events {
			if event.Id == nil {
				continue
			}
			if err := r.repository.MarkPublished(ctx, *event.Id, publishedTime); err != nil {
				return published, err
			}
			published++
		}
		r.logger.Infow("published outbox events", "count", len(events))

		if len(events) < r.batchSize {
			return published, nil
		}
	}
}
