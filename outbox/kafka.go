package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/fx"
)

type KafkaConfig struct {
	Brokers []string `envconfig:"CLINIC_KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"CLINIC_KAFKA_NOTIFICATIONS_TOPIC" default:"clinic.notifications"`
}

func NewKafkaConfig() (KafkaConfig, error) {
	cfg := KafkaConfig{}
	err := envconfig.Process("", &cfg)
	return cfg, err
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ Publisher = &KafkaPublisher{}

func NewKafkaPublisher(cfg KafkaConfig, lifecycle fx.Lifecycle) Publisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	})

	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return writer.Close()
		},
	})

	return &KafkaPublisher{writer: writer}
}

func (k *KafkaPublisher) Publish(ctx context.Context, events []Event) error {
	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		message, err := NewMessage(event)
		if err != nil {
			return err
		}
		messages = append(messages, message)
	}

	return k.writer.WriteMessages(ctx, messages...)
}

// Message is the json representation of an event on the notification topic
type Message struct {
	Id          string          `json:"id"`
	EventType   EventType       `json:"eventType"`
	CreatedTime time.Time       `json:"createdTime"`
	Payload     json.RawMessage `json:"payload"`
}

// NewMessage converts the event to a kafka message keyed by the event id
func NewMessage(event Event) (kafka.Message, error) {
	payload, err := bson.MarshalExtJSON(event.Payload, false, false)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("unable to convert outbox event payload: %w", err)
	}

	id := ""
	if event.Id != nil {
		id = event.Id.Hex()
	}

	value, err := json.Marshal(Message{
		Id:          id,
		EventType:   event.EventType,
		CreatedTime: event.CreatedTime,
		Payload:     payload,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	headers := lo.Map([][2]string{
		{"messageId", uuid.NewString()},
		{"eventType", string(event.EventType)},
	}, func(h [2]string, _ int) kafka.Header {
		return kafka.Header{Key: h[0], Value: []byte(h[1])}
	})

	return kafka.Message{
		Key:     []byte(id),
		Value:   value,
		Headers: headers,
	}, nil
}
